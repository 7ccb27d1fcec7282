package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"JOBPAGES_DEFAULT_KEYWORD", "JOBPAGES_OUTPUT_DIR", "JOBPAGES_INDEX_PATH",
		"JOBPAGES_HTTP_TIMEOUT", "JOBPAGES_NAV_TIMEOUT", "JOBPAGES_SETTLE_DELAY",
		"JOBPAGES_HEADLESS", "JOBPAGES_STEALTH", "JOBPAGES_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "python", cfg.Output.DefaultKeyword)
	assert.Equal(t, "pages", cfg.Output.Dir)
	assert.Equal(t, "index.html", cfg.Output.IndexPath)
	assert.Equal(t, 20*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Browser.NavigationTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Browser.SettleDelay)
	assert.True(t, cfg.Browser.Headless)
	assert.False(t, cfg.Browser.Stealth)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JOBPAGES_DEFAULT_KEYWORD", "golang")
	t.Setenv("JOBPAGES_OUTPUT_DIR", "out")
	t.Setenv("JOBPAGES_HTTP_TIMEOUT", "3s")
	t.Setenv("JOBPAGES_HEADLESS", "false")
	t.Setenv("JOBPAGES_PORT", "9999")

	cfg := Load()

	assert.Equal(t, "golang", cfg.Output.DefaultKeyword)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JOBPAGES_HTTP_TIMEOUT", "soon")
	t.Setenv("JOBPAGES_PORT", "eighty")
	t.Setenv("JOBPAGES_STEALTH", "maybe")

	cfg := Load()

	assert.Equal(t, 20*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Browser.Stealth)
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "source", "Web3Career")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"source":"Web3Career"`)
}
