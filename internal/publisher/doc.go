// Package publisher creates summary documents in Google Docs.
//
// A document is created with the recording's title, the summary text is
// inserted at the document's first insertion point, and the document is then
// moved into the configured summaries folder by adding that folder as a
// parent. The shareable view link of the finished document is returned.
package publisher
