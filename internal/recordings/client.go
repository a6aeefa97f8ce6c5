package recordings

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Drive API service for recording discovery
type Client struct {
	service *drive.Service
}

// NewClient creates a new recordings client using the provided authenticated
// HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{service: service}, nil
}

// List returns the video recordings in the given folder, ordered by creation
// time descending. Trashed files are excluded and results are deduplicated
// by file ID.
func (c *Client) List(ctx context.Context, folderID string) ([]*Recording, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folderID is required")
	}

	query := fmt.Sprintf("'%s' in parents and mimeType contains 'video/' and trashed = false", folderID)

	var files []*drive.File
	pageToken := ""
	for {
		call := c.service.Files.List().
			Context(ctx).
			Q(query).
			OrderBy("createdTime desc").
			Fields("nextPageToken, files(id, name, mimeType, createdTime, webViewLink)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		fileList, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list recordings in folder %s: %w", folderID, err)
		}

		files = append(files, fileList.Files...)
		pageToken = fileList.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return dedupeByID(files), nil
}

// Download fetches the full media content of a recording into memory
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download recording %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording %s: %w", fileID, err)
	}

	return data, nil
}

// dedupeByID collapses the file list to unique IDs, keeping the first
// occurrence of each so the creation-time ordering is preserved
func dedupeByID(files []*drive.File) []*Recording {
	seen := make(map[string]bool, len(files))
	result := make([]*Recording, 0, len(files))

	for _, f := range files {
		if seen[f.Id] {
			continue
		}
		seen[f.Id] = true
		result = append(result, convertToRecording(f))
	}

	return result
}

// convertToRecording converts a Drive API File to our Recording type
func convertToRecording(f *drive.File) *Recording {
	rec := &Recording{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		WebViewLink: f.WebViewLink,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			rec.CreatedTime = t
		}
	}

	return rec
}
