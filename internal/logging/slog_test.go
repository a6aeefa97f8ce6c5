package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test message", Err(nil))

	output := buf.String()
	if strings.Contains(output, KeyError) {
		t.Errorf("Expected no error attribute for nil error, got: %s", output)
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test message", Err(errors.New("boom")))

	output := buf.String()
	if !strings.Contains(output, "error=boom") {
		t.Errorf("Expected error attribute, got: %s", output)
	}
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithService(logger, "drive").Info("listing")

	output := buf.String()
	if !strings.Contains(output, "service=drive") {
		t.Errorf("Expected service attribute, got: %s", output)
	}
}

func TestAttributeHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test",
		Operation("list"),
		Recording("standup.mp4"),
		Count(3),
		Status(StatusSuccess),
	)

	output := buf.String()
	for _, want := range []string{"operation=list", "recording=standup.mp4", "count=3", "status=success"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}
