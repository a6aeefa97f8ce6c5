package ledger

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const (
	// readRange is the fixed four-column range holding all ledger rows
	readRange = "Sheet1!A:D"
)

// headerRow is written once, before the first data rows
var headerRow = []interface{}{"title", "date", "time", "meeting link"}

// Client wraps the Google Sheets API service for the recording ledger
type Client struct {
	service *sheets.Service
}

// NewClient creates a new ledger client using the provided authenticated
// HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// Read fetches all ledger rows from the spreadsheet. An empty sheet yields
// an empty slice, not an error.
func (c *Client) Read(ctx context.Context, spreadsheetID string) ([]Entry, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger %s: %w", spreadsheetID, err)
	}

	return rowsToEntries(resp.Values), nil
}

// Append writes the given entries as new ledger rows. When the target range
// holds no data yet, a header row is written first. Appending zero entries
// is a no-op and makes no API call.
func (c *Client) Append(ctx context.Context, spreadsheetID string, entries []Entry) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if len(entries) == 0 {
		return nil
	}

	existing, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to check ledger %s before append: %w", spreadsheetID, err)
	}

	values := entriesToRows(entries, len(existing.Values) == 0)

	_, err = c.service.Spreadsheets.Values.Append(spreadsheetID, readRange, &sheets.ValueRange{
		Values: values,
	}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append %d rows to ledger %s: %w", len(entries), spreadsheetID, err)
	}

	return nil
}

// rowsToEntries converts raw sheet values to ledger entries. Rows shorter
// than four columns are padded with empty cells; a leading header row is
// skipped.
func rowsToEntries(rows [][]interface{}) []Entry {
	entries := make([]Entry, 0, len(rows))

	for i, row := range rows {
		cells := make([]string, 4)
		for j := 0; j < len(row) && j < 4; j++ {
			if s, ok := row[j].(string); ok {
				cells[j] = s
			}
		}

		if i == 0 && isHeaderRow(cells) {
			continue
		}

		entries = append(entries, Entry{
			Title: cells[0],
			Date:  cells[1],
			Time:  cells[2],
			Link:  cells[3],
		})
	}

	return entries
}

// isHeaderRow reports whether the cells match the fixed header row
func isHeaderRow(cells []string) bool {
	for i, want := range headerRow {
		if cells[i] != want {
			return false
		}
	}
	return true
}

// entriesToRows converts entries to sheet values, prepending the header row
// when the sheet is still empty
func entriesToRows(entries []Entry, withHeader bool) [][]interface{} {
	rows := make([][]interface{}, 0, len(entries)+1)

	if withHeader {
		rows = append(rows, headerRow)
	}

	for _, e := range entries {
		rows = append(rows, []interface{}{e.Title, e.Date, e.Time, e.Link})
	}

	return rows
}
