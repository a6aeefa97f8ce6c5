// Package logging provides structured logging helpers built on log/slog.
//
// It defines the common attribute keys used across the pipeline so that log
// lines stay consistently named, plus small constructor helpers to reduce
// repetition at call sites. Console output is the only observability surface
// of the application.
package logging
