package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	sheets "google.golang.org/api/sheets/v4"
)

// Scopes are the Google OAuth scopes required by the pipeline.
//
// The scopes provide access to:
//   - Google Drive: full access (list recordings, download media, move documents)
//   - Google Sheets: read and append ledger rows
//   - Google Docs: create and update summary documents
var Scopes = []string{
	drive.DriveScope,
	sheets.SpreadsheetsScope,
	docs.DocumentsScope,
}

// CredentialsProvider is an interface for providing OAuth token sources for
// Google APIs. This abstraction allows different credential sources (file-based,
// metadata server, test stubs) to be plugged in.
type CredentialsProvider interface {
	// TokenSource returns an OAuth2 token source scoped for the pipeline
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// FileCredentialsProvider provides credentials from a service account JSON key
// file on disk.
type FileCredentialsProvider struct {
	path string
}

// NewFileCredentialsProvider creates a provider reading the key file at path
func NewFileCredentialsProvider(path string) *FileCredentialsProvider {
	return &FileCredentialsProvider{path: path}
}

// TokenSource loads the key file and returns a token source for the pipeline scopes
func (p *FileCredentialsProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", p.path, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", p.path, err)
	}

	return creds.TokenSource, nil
}

// NewHTTPClient returns an HTTP client configured with OAuth2 authentication.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors.
func NewHTTPClient(ctx context.Context, provider CredentialsProvider) (*http.Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("credentials provider cannot be nil")
	}

	ts, err := provider.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	return client, nil
}
