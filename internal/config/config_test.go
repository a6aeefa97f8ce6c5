package config

import (
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("MEETSCRIBE_PROJECT_ID", "test-project")
	t.Setenv("MEETSCRIBE_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("MEETSCRIBE_RECORDINGS_FOLDER_ID", "folder123")
	t.Setenv("MEETSCRIBE_SPREADSHEET_ID", "sheet123")
	t.Setenv("MEETSCRIBE_SUMMARIES_FOLDER_ID", "folder456")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ProjectID != "test-project" {
		t.Errorf("Expected ProjectID test-project, got %s", cfg.ProjectID)
	}
	if cfg.RecordingsFolderID != "folder123" {
		t.Errorf("Expected RecordingsFolderID folder123, got %s", cfg.RecordingsFolderID)
	}
	if cfg.SpreadsheetID != "sheet123" {
		t.Errorf("Expected SpreadsheetID sheet123, got %s", cfg.SpreadsheetID)
	}
	if cfg.SummariesFolderID != "folder456" {
		t.Errorf("Expected SummariesFolderID folder456, got %s", cfg.SummariesFolderID)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("MEETSCRIBE_REGION", "")
	t.Setenv("MEETSCRIBE_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Region != defaultRegion {
		t.Errorf("Expected default region %s, got %s", defaultRegion, cfg.Region)
	}
	if cfg.Model != defaultModel {
		t.Errorf("Expected default model %s, got %s", defaultModel, cfg.Model)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MEETSCRIBE_REGION", "europe-west4")
	t.Setenv("MEETSCRIBE_MODEL", "gemini-1.5-flash")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Region != "europe-west4" {
		t.Errorf("Expected region europe-west4, got %s", cfg.Region)
	}
	if cfg.Model != "gemini-1.5-flash" {
		t.Errorf("Expected model gemini-1.5-flash, got %s", cfg.Model)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("MEETSCRIBE_SPREADSHEET_ID", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing MEETSCRIBE_SPREADSHEET_ID")
	}
}
