// Package ledger provides a client for the spreadsheet that tracks every
// recording ever logged.
//
// Each row is (title, date, time, meeting link). A row's uniqueness key is
// title + date + "T" + time; recordings whose key already appears in the
// ledger are never re-logged. Rows are append-only; a header row is written
// once, the first time the sheet receives data.
package ledger
