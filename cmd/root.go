package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetscribe application
var rootCmd = &cobra.Command{
	Use:   "meetscribe",
	Short: "Logs new meeting recordings and publishes AI summaries",
	Long: `meetscribe watches a Google Drive folder for meeting recordings,
logs newly discovered recordings to a spreadsheet ledger, summarizes the
most recent recording with Gemini, and publishes the summary as a Google Doc.

It runs a single pass and exits; invoke it from cron or any external scheduler.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetscribe version %s\n" .Version}}`)

	// If no subcommand is provided, run the pipeline by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "run")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
}
