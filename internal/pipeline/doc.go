// Package pipeline sequences one run of the recording automation:
// discover recordings, log new ones to the ledger, summarize the most
// recent recording and publish the summary as a document.
//
// The run is a single linear pass. An empty recording list short-circuits
// the run; every other step degrades on failure instead of aborting: listing
// and ledger failures leave that step empty, a summarization failure
// substitutes the fixed fallback text, and a publish failure only loses the
// document link. Each remote call is attempted exactly once.
package pipeline
