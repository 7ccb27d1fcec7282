// Package main provides the jobpages command line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/use-agent/jobpages/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "jobpages",
	Short: "Snapshot job board search pages to local HTML files",
	Long: "jobpages fetches the search results of BerlinStartupJobs, Web3Career and " +
		"WeWorkRemotely for one keyword, saves each page's HTML under a timestamped " +
		"name, and writes an index page linking to the three files.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		slog.SetDefault(cfg.Log.NewLogger(os.Stderr))
	},
	RunE: runSnapshot,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
