// Package cmd implements the command-line interface for meetscribe.
//
// This package provides the following commands:
//   - run: Execute one pass of the recording pipeline (discover, log, summarize, publish)
//   - version: Display version information
//
// The run command is the default command when no subcommand is specified.
package cmd
