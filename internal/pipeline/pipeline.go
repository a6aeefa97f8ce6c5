package pipeline

import (
	"context"
	"log/slog"

	"github.com/meetscribe/meetscribe/internal/ledger"
	"github.com/meetscribe/meetscribe/internal/logging"
	"github.com/meetscribe/meetscribe/internal/recordings"
	"github.com/meetscribe/meetscribe/internal/summarizer"
)

// Lister discovers recordings and downloads their media
type Lister interface {
	List(ctx context.Context, folderID string) ([]*recordings.Recording, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Ledger reads and appends spreadsheet rows for logged recordings
type Ledger interface {
	Read(ctx context.Context, spreadsheetID string) ([]ledger.Entry, error)
	Append(ctx context.Context, spreadsheetID string, entries []ledger.Entry) error
}

// Summarizer generates a summary from recording media
type Summarizer interface {
	Summarize(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Publisher creates a summary document and returns its shareable link
type Publisher interface {
	Publish(ctx context.Context, title, body string) (string, error)
}

// Config wires the pipeline's collaborators and identifiers
type Config struct {
	Lister     Lister
	Ledger     Ledger
	Summarizer Summarizer
	Publisher  Publisher

	// RecordingsFolderID is the Drive folder queried for recordings
	RecordingsFolderID string

	// SpreadsheetID is the ledger spreadsheet
	SpreadsheetID string

	// Logger receives progress and error lines; defaults to the application
	// logger when nil
	Logger *slog.Logger
}

// RunReport describes what one run did
type RunReport struct {
	// Discovered is the number of recordings found in the folder
	Discovered int

	// NewlyLogged is the number of ledger rows appended this run
	NewlyLogged int

	// Summarized is the name of the recording that was summarized, empty
	// when no recordings were discovered
	Summarized string

	// FallbackUsed reports whether the fallback text replaced the summary
	FallbackUsed bool

	// DocumentLink is the published document's view link, empty on publish
	// failure or when nothing was published
	DocumentLink string
}

// Pipeline executes one pass of the recording automation
type Pipeline struct {
	lister     Lister
	ledger     Ledger
	summarizer Summarizer
	publisher  Publisher
	folderID   string
	sheetID    string
	logger     *slog.Logger
}

// New creates a pipeline from the given configuration
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New()
	}

	return &Pipeline{
		lister:     cfg.Lister,
		ledger:     cfg.Ledger,
		summarizer: cfg.Summarizer,
		publisher:  cfg.Publisher,
		folderID:   cfg.RecordingsFolderID,
		sheetID:    cfg.SpreadsheetID,
		logger:     logger,
	}
}

// Run executes a single pass: list, log, summarize, publish. Failures after
// authorization never abort the run; each step degrades as described in the
// package documentation.
func (p *Pipeline) Run(ctx context.Context) *RunReport {
	report := &RunReport{}

	recs := p.listRecordings(ctx)
	report.Discovered = len(recs)
	if len(recs) == 0 {
		p.logger.Info("no recordings found, nothing to do")
		return report
	}

	report.NewlyLogged = p.logNewRecordings(ctx, recs)

	// Always the most recent recording, whether or not it was newly logged
	newest := recs[0]
	report.Summarized = newest.Name

	summary, fallback := p.summarize(ctx, newest)
	report.FallbackUsed = fallback

	report.DocumentLink = p.publish(ctx, newest.Name, summary)

	p.logger.Info("run complete",
		logging.Count(report.Discovered),
		slog.Int("newly_logged", report.NewlyLogged),
		logging.Recording(report.Summarized),
	)

	return report
}

func (p *Pipeline) listRecordings(ctx context.Context) []*recordings.Recording {
	logger := logging.WithService(p.logger, "drive")

	recs, err := p.lister.List(ctx, p.folderID)
	if err != nil {
		logger.Error("failed to list recordings, continuing with none", logging.Err(err))
		return nil
	}

	logger.Info("listed recordings", logging.Count(len(recs)))
	return recs
}

// logNewRecordings appends ledger rows for recordings whose uniqueness key
// is not yet present, returning the number of rows appended
func (p *Pipeline) logNewRecordings(ctx context.Context, recs []*recordings.Recording) int {
	logger := logging.WithService(p.logger, "sheets")

	existing, err := p.ledger.Read(ctx, p.sheetID)
	if err != nil {
		logger.Error("failed to read ledger, treating it as empty", logging.Err(err))
	}
	keys := ledger.KeySet(existing)

	var newEntries []ledger.Entry
	for _, rec := range recs {
		entry := ledger.NewEntry(rec.Name, rec.CreatedTime, rec.WebViewLink)
		if keys[entry.Key()] {
			continue
		}
		newEntries = append(newEntries, entry)
	}

	if len(newEntries) == 0 {
		logger.Info("no new recordings to log")
		return 0
	}

	if err := p.ledger.Append(ctx, p.sheetID, newEntries); err != nil {
		logger.Error("failed to append ledger rows", logging.Err(err), logging.Count(len(newEntries)))
		return 0
	}

	logger.Info("logged new recordings", logging.Count(len(newEntries)))
	return len(newEntries)
}

// summarize downloads and summarizes the recording, substituting the fixed
// fallback text on any failure. The second return reports fallback use.
func (p *Pipeline) summarize(ctx context.Context, rec *recordings.Recording) (string, bool) {
	logger := logging.WithService(p.logger, "gemini")

	data, err := p.lister.Download(ctx, rec.ID)
	if err != nil {
		logger.Error("failed to download recording, using fallback summary",
			logging.Recording(rec.Name), logging.Err(err))
		return summarizer.FallbackMessage, true
	}

	summary, err := p.summarizer.Summarize(ctx, data, rec.MimeType)
	if err != nil {
		logger.Error("failed to summarize recording, using fallback summary",
			logging.Recording(rec.Name), logging.Err(err))
		return summarizer.FallbackMessage, true
	}

	logger.Info("summarized recording", logging.Recording(rec.Name))
	return summary, false
}

func (p *Pipeline) publish(ctx context.Context, title, body string) string {
	logger := logging.WithService(p.logger, "docs")

	link, err := p.publisher.Publish(ctx, title, body)
	if err != nil {
		logger.Error("failed to publish summary document", logging.Recording(title), logging.Err(err))
		return ""
	}

	logger.Info("published summary document", logging.Recording(title), slog.String("link", link))
	return link
}
