package ledger

import (
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	created, _ := time.Parse(time.RFC3339, "2024-01-01T10:00:00Z")

	e := NewEntry("meetA", created, "linkA")

	if e.Title != "meetA" {
		t.Errorf("Expected Title meetA, got %s", e.Title)
	}
	if e.Date != "2024-01-01" {
		t.Errorf("Expected Date 2024-01-01, got %s", e.Date)
	}
	if e.Time != "10:00:00" {
		t.Errorf("Expected Time 10:00:00, got %s", e.Time)
	}
	if e.Link != "linkA" {
		t.Errorf("Expected Link linkA, got %s", e.Link)
	}
}

func TestNewEntryConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	created := time.Date(2024, 1, 2, 1, 30, 0, 0, loc)

	e := NewEntry("meetA", created, "linkA")

	if e.Date != "2024-01-01" {
		t.Errorf("Expected Date 2024-01-01 after UTC conversion, got %s", e.Date)
	}
	if e.Time != "23:30:00" {
		t.Errorf("Expected Time 23:30:00 after UTC conversion, got %s", e.Time)
	}
}

func TestEntryKey(t *testing.T) {
	e := Entry{Title: "meetA", Date: "2024-01-01", Time: "10:00:00", Link: "linkA"}

	if got := e.Key(); got != "meetA2024-01-01T10:00:00" {
		t.Errorf("Expected key meetA2024-01-01T10:00:00, got %s", got)
	}
}

func TestKeySet(t *testing.T) {
	entries := []Entry{
		{Title: "meetA", Date: "2024-01-01", Time: "10:00:00"},
		{Title: "meetB", Date: "2024-01-02", Time: "11:00:00"},
	}

	keys := KeySet(entries)

	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(keys))
	}
	if !keys["meetA2024-01-01T10:00:00"] {
		t.Error("Expected key for meetA")
	}
	if !keys["meetB2024-01-02T11:00:00"] {
		t.Error("Expected key for meetB")
	}
}

func TestRowsToEntries(t *testing.T) {
	rows := [][]interface{}{
		{"title", "date", "time", "meeting link"},
		{"meetA", "2024-01-01", "10:00:00", "linkA"},
		{"meetB", "2024-01-02", "11:00:00", "linkB"},
	}

	entries := rowsToEntries(rows)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries (header skipped), got %d", len(entries))
	}
	if entries[0].Title != "meetA" || entries[1].Title != "meetB" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestRowsToEntriesNoHeader(t *testing.T) {
	rows := [][]interface{}{
		{"meetA", "2024-01-01", "10:00:00", "linkA"},
	}

	entries := rowsToEntries(rows)

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Link != "linkA" {
		t.Errorf("Expected Link linkA, got %s", entries[0].Link)
	}
}

func TestRowsToEntriesShortRow(t *testing.T) {
	rows := [][]interface{}{
		{"meetA", "2024-01-01"},
	}

	entries := rowsToEntries(rows)

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Time != "" || entries[0].Link != "" {
		t.Errorf("Expected short row padded with empty cells, got %+v", entries[0])
	}
}

func TestRowsToEntriesEmpty(t *testing.T) {
	if entries := rowsToEntries(nil); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestEntriesToRowsWithHeader(t *testing.T) {
	entries := []Entry{
		{Title: "meetA", Date: "2024-01-01", Time: "10:00:00", Link: "linkA"},
	}

	rows := entriesToRows(entries, true)

	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "title" || rows[0][3] != "meeting link" {
		t.Errorf("Expected header row first, got %v", rows[0])
	}
	if rows[1][0] != "meetA" {
		t.Errorf("Expected entry row second, got %v", rows[1])
	}
}

func TestEntriesToRowsWithoutHeader(t *testing.T) {
	entries := []Entry{
		{Title: "meetA", Date: "2024-01-01", Time: "10:00:00", Link: "linkA"},
	}

	rows := entriesToRows(entries, false)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row without header, got %d", len(rows))
	}
	if rows[0][0] != "meetA" {
		t.Errorf("Expected entry row, got %v", rows[0])
	}
}
