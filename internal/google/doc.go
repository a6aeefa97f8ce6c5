// Package google provides shared credential handling for all Google services
// used by meetscribe.
//
// The CredentialsProvider interface allows different credential sources to be
// plugged in, with FileCredentialsProvider reading a service account JSON key
// from disk as the production implementation. One authenticated HTTP client is
// created per run and shared by the Drive, Sheets and Docs services.
package google
