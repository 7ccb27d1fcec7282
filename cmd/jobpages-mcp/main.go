// Package main exposes jobpages runs as an MCP tool over stdio.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/models"
	"github.com/use-agent/jobpages/report"
	"github.com/use-agent/jobpages/runner"
)

// snapshotRunner is the part of runner.Runner the tool needs.
type snapshotRunner interface {
	Run(ctx context.Context, keyword string) (*models.RunReport, error)
}

func main() {
	cfg := config.Load()
	// stdout carries the MCP protocol, so logs go to stderr.
	slog.SetDefault(cfg.Log.NewLogger(os.Stderr))

	s := server.NewMCPServer(
		"jobpages",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	snapshotTool := mcp.NewTool("snapshot_job_pages",
		mcp.WithDescription("Fetch the BerlinStartupJobs, Web3Career and WeWorkRemotely search pages for a keyword, save their raw HTML to timestamped files, and write an index page linking to them. Returns the written file paths."),
		mcp.WithString("keyword",
			mcp.Description("Search keyword (default: "+cfg.Output.DefaultKeyword+")"),
		),
	)
	s.AddTool(snapshotTool, handleSnapshot(runner.NewFromConfig(cfg)))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleSnapshot(r snapshotRunner) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword := request.GetString("keyword", "")

		rep, err := r.Run(ctx, keyword)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("snapshot failed: %v", err)), nil
		}

		var buf bytes.Buffer
		report.PrintSummary(&buf, rep)
		return mcp.NewToolResultText(buf.String()), nil
	}
}
