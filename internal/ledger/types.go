package ledger

import "time"

// Entry represents one ledger row for a logged recording
type Entry struct {
	// Title is the recording's display name
	Title string `json:"title"`

	// Date is the recording's creation date (2006-01-02)
	Date string `json:"date"`

	// Time is the recording's creation time of day (15:04:05)
	Time string `json:"time"`

	// Link is the recording's shareable view link
	Link string `json:"link"`
}

// NewEntry builds a ledger entry for a recording. Date and time are derived
// from the creation timestamp in UTC.
func NewEntry(title string, created time.Time, link string) Entry {
	utc := created.UTC()
	return Entry{
		Title: title,
		Date:  utc.Format("2006-01-02"),
		Time:  utc.Format("15:04:05"),
		Link:  link,
	}
}

// Key returns the uniqueness key identifying this entry across runs
func (e Entry) Key() string {
	return e.Title + e.Date + "T" + e.Time
}

// KeySet builds the set of uniqueness keys for the given entries
func KeySet(entries []Entry) map[string]bool {
	keys := make(map[string]bool, len(entries))
	for _, e := range entries {
		keys[e.Key()] = true
	}
	return keys
}
