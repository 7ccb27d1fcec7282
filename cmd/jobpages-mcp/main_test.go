package main

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/jobpages/models"
)

type fakeRunner struct {
	keyword string
	err     error
}

func (f *fakeRunner) Run(_ context.Context, keyword string) (*models.RunReport, error) {
	f.keyword = keyword
	if f.err != nil {
		return nil, f.err
	}
	return &models.RunReport{
		Keyword:   keyword,
		Stamp:     "20240101_120000",
		IndexPath: "index.html",
		Files: []models.OutputFile{
			{Source: "BerlinStartupJobs", Path: "pages/berlin_golang_20240101_120000.html"},
			{Source: "Web3Career", Path: "pages/web3_golang_20240101_120000.html"},
			{Source: "WeWorkRemotely", Path: "pages/wework_golang_20240101_120000.html"},
		},
	}, nil
}

func callTool(t *testing.T, r snapshotRunner, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "snapshot_job_pages"
	req.Params.Arguments = args

	result, err := handleSnapshot(r)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleSnapshot(t *testing.T) {
	fr := &fakeRunner{}
	result := callTool(t, fr, map[string]any{"keyword": "golang"})

	assert.False(t, result.IsError)
	assert.Equal(t, "golang", fr.keyword)
	text := resultText(t, result)
	assert.Contains(t, text, "- Web3Career: pages/web3_golang_20240101_120000.html")
	assert.Contains(t, text, "- index.html written")
}

func TestHandleSnapshot_NoKeyword(t *testing.T) {
	fr := &fakeRunner{}
	callTool(t, fr, map[string]any{})

	assert.Equal(t, "", fr.keyword, "the runner applies the default keyword")
}

func TestHandleSnapshot_Failure(t *testing.T) {
	fr := &fakeRunner{err: errors.New("runner: Web3Career: HTTP_STATUS: HTTP 503")}
	result := callTool(t, fr, map[string]any{"keyword": "golang"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "HTTP 503")
}
