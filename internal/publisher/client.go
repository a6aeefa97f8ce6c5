package publisher

import (
	"context"
	"fmt"
	"net/http"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Docs and Drive API services for publishing
// summary documents
type Client struct {
	docsService  *docs.Service
	driveService *drive.Service
	folderID     string
}

// NewClient creates a new publisher client using the provided authenticated
// HTTP client. Published documents are moved into folderID.
func NewClient(ctx context.Context, httpClient *http.Client, folderID string) (*Client, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folderID is required")
	}

	docsService, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		docsService:  docsService,
		driveService: driveService,
		folderID:     folderID,
	}, nil
}

// Publish creates a document titled after the recording, inserts the summary
// body, moves the document into the summaries folder and returns its
// shareable view link
func (c *Client) Publish(ctx context.Context, title, body string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("title is required")
	}

	doc, err := c.docsService.Documents.Create(&docs.Document{Title: title}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create document %q: %w", title, err)
	}

	if err := c.insertBody(ctx, doc.DocumentId, body); err != nil {
		return "", err
	}

	if _, err := c.driveService.Files.Update(doc.DocumentId, &drive.File{}).
		Context(ctx).
		AddParents(c.folderID).
		Fields("id, parents").
		Do(); err != nil {
		return "", fmt.Errorf("failed to move document %s into folder %s: %w", doc.DocumentId, c.folderID, err)
	}

	file, err := c.driveService.Files.Get(doc.DocumentId).
		Context(ctx).
		Fields("webViewLink").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to get link for document %s: %w", doc.DocumentId, err)
	}

	return file.WebViewLink, nil
}

// insertBody writes the summary text starting at index 1, the first valid
// insertion point after the document's implicit root. An empty body is
// skipped because the Docs API rejects empty text inserts.
func (c *Client) insertBody(ctx context.Context, documentID, body string) error {
	if body == "" {
		return nil
	}

	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Text: body,
					Location: &docs.Location{
						Index: 1,
					},
				},
			},
		},
	}

	if _, err := c.docsService.Documents.BatchUpdate(documentID, req).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("failed to insert text into document %s: %w", documentID, err)
	}

	return nil
}
