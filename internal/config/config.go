package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all settings for a pipeline run. Every identifier is
// environment-provided; there are no module-level globals.
type Config struct {
	// ProjectID is the Google Cloud project used for Vertex AI
	ProjectID string

	// Region is the Vertex AI region
	Region string

	// CredentialsFile is the path to the service account JSON key
	CredentialsFile string

	// RecordingsFolderID is the Drive folder watched for recordings
	RecordingsFolderID string

	// SpreadsheetID is the ledger spreadsheet
	SpreadsheetID string

	// SummariesFolderID is the Drive folder summary documents are moved into
	SummariesFolderID string

	// Model is the Gemini model used for summarization
	Model string
}

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-1.5-pro"
)

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ProjectID:          os.Getenv("MEETSCRIBE_PROJECT_ID"),
		Region:             getEnv("MEETSCRIBE_REGION", defaultRegion),
		CredentialsFile:    os.Getenv("MEETSCRIBE_CREDENTIALS_FILE"),
		RecordingsFolderID: os.Getenv("MEETSCRIBE_RECORDINGS_FOLDER_ID"),
		SpreadsheetID:      os.Getenv("MEETSCRIBE_SPREADSHEET_ID"),
		SummariesFolderID:  os.Getenv("MEETSCRIBE_SUMMARIES_FOLDER_ID"),
		Model:              getEnv("MEETSCRIBE_MODEL", defaultModel),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"MEETSCRIBE_PROJECT_ID", c.ProjectID},
		{"MEETSCRIBE_CREDENTIALS_FILE", c.CredentialsFile},
		{"MEETSCRIBE_RECORDINGS_FOLDER_ID", c.RecordingsFolderID},
		{"MEETSCRIBE_SPREADSHEET_ID", c.SpreadsheetID},
		{"MEETSCRIBE_SUMMARIES_FOLDER_ID", c.SummariesFolderID},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s environment variable must be set", r.name)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
