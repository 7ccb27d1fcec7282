package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/use-agent/jobpages/report"
	"github.com/use-agent/jobpages/runner"
)

var keywordFlag string

func init() {
	rootCmd.Flags().StringVarP(&keywordFlag, "keyword", "k", "", "search keyword (skips the interactive prompt)")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.NewFromConfig(cfg)

	keyword := keywordFlag
	if !cmd.Flags().Changed("keyword") {
		var err error
		keyword, err = runner.PromptKeyword(os.Stdin, cmd.OutOrStdout(), r.DefaultKeyword())
		if err != nil {
			return err
		}
	}

	rep, err := r.Run(ctx, keyword)
	if err != nil {
		return err
	}

	report.PrintSummary(cmd.OutOrStdout(), rep)
	return nil
}
