package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/google"
	"github.com/meetscribe/meetscribe/internal/ledger"
	"github.com/meetscribe/meetscribe/internal/logging"
	"github.com/meetscribe/meetscribe/internal/pipeline"
	"github.com/meetscribe/meetscribe/internal/publisher"
	"github.com/meetscribe/meetscribe/internal/recordings"
	"github.com/meetscribe/meetscribe/internal/summarizer"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one pass of the recording pipeline",
		Long: `Discover meeting recordings in the configured Drive folder, append any
not yet logged to the spreadsheet ledger, summarize the most recent recording
with Gemini and publish the summary as a Google Doc in the summaries folder.

Configuration is read from the environment (and a .env file when present):
MEETSCRIBE_PROJECT_ID, MEETSCRIBE_CREDENTIALS_FILE,
MEETSCRIBE_RECORDINGS_FOLDER_ID, MEETSCRIBE_SPREADSHEET_ID and
MEETSCRIBE_SUMMARIES_FOLDER_ID are required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			logger := logging.New()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Credential failure is the only fatal error: everything after
			// this degrades per step instead of aborting the run.
			provider := google.NewFileCredentialsProvider(cfg.CredentialsFile)
			httpClient, err := google.NewHTTPClient(ctx, provider)
			if err != nil {
				return fmt.Errorf("failed to authorize Google APIs: %w", err)
			}

			lister, err := recordings.NewClient(ctx, httpClient)
			if err != nil {
				return fmt.Errorf("failed to create recordings client: %w", err)
			}

			ledgerClient, err := ledger.NewClient(ctx, httpClient)
			if err != nil {
				return fmt.Errorf("failed to create ledger client: %w", err)
			}

			summarizerClient, err := summarizer.NewClient(ctx, cfg.ProjectID, cfg.Region, &summarizer.Options{
				Model: cfg.Model,
			})
			if err != nil {
				return fmt.Errorf("failed to create summarizer client: %w", err)
			}
			defer summarizerClient.Close()

			publisherClient, err := publisher.NewClient(ctx, httpClient, cfg.SummariesFolderID)
			if err != nil {
				return fmt.Errorf("failed to create publisher client: %w", err)
			}

			p := pipeline.New(pipeline.Config{
				Lister:             lister,
				Ledger:             ledgerClient,
				Summarizer:         summarizerClient,
				Publisher:          publisherClient,
				RecordingsFolderID: cfg.RecordingsFolderID,
				SpreadsheetID:      cfg.SpreadsheetID,
				Logger:             logger,
			})

			p.Run(ctx)
			return nil
		},
	}

	return cmd
}
