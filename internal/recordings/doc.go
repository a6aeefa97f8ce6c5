// Package recordings provides a client for discovering meeting recordings in
// a Google Drive folder.
//
// The client lists non-trashed video files within one folder, newest first,
// and downloads recording media for summarization. Listing results are
// deduplicated by file ID as a defense against query result anomalies.
package recordings
