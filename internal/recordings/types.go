package recordings

import "time"

// Recording represents metadata about a meeting recording in the watched
// Drive folder. Recordings are owned by Drive and read-only to this system.
type Recording struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the display name of the recording
	Name string `json:"name"`

	// MimeType is the MIME type of the recording (always a video type)
	MimeType string `json:"mimeType"`

	// CreatedTime is when the recording was created
	CreatedTime time.Time `json:"createdTime"`

	// WebViewLink is a link for opening the recording in the Drive viewer
	WebViewLink string `json:"webViewLink,omitempty"`
}
