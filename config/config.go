package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Output  OutputConfig
	HTTP    HTTPConfig
	Browser BrowserConfig
	Server  ServerConfig
	Webhook WebhookConfig
	Log     LogConfig
}

// OutputConfig controls where snapshots and the index page are written.
type OutputConfig struct {
	// DefaultKeyword is used when the prompt answer is empty.
	DefaultKeyword string // default: "python"

	// Dir is the directory that receives one HTML file per source.
	Dir string // default: "pages"

	// IndexPath is the summary page location.
	IndexPath string // default: "index.html"
}

// HTTPConfig controls the plain HTTP engine.
type HTTPConfig struct {
	// Timeout bounds the whole request including body read.
	Timeout time.Duration // default: 20s
}

// BrowserConfig controls the per-fetch headless browser.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// Stealth routes browser sources through the rod-stealth engine.
	Stealth bool // default: false

	// NavigationTimeout bounds navigation plus the network idle wait.
	NavigationTimeout time.Duration // default: 60s

	// IdleQuiet is the quiet window without new requests that counts as idle.
	IdleQuiet time.Duration // default: 500ms

	// SettleDelay is waited after network idle so client-side rendering settles.
	SettleDelay time.Duration // default: 1.5s
}

// ServerConfig controls the preview server started by "jobpages serve".
type ServerConfig struct {
	Host string // default: "127.0.0.1"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// WebhookConfig controls the optional run.completed notification.
type WebhookConfig struct {
	URL    string
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Output: OutputConfig{
			DefaultKeyword: envOr("JOBPAGES_DEFAULT_KEYWORD", "python"),
			Dir:            envOr("JOBPAGES_OUTPUT_DIR", "pages"),
			IndexPath:      envOr("JOBPAGES_INDEX_PATH", "index.html"),
		},
		HTTP: HTTPConfig{
			Timeout: envDurationOr("JOBPAGES_HTTP_TIMEOUT", 20*time.Second),
		},
		Browser: BrowserConfig{
			Headless:          envBoolOr("JOBPAGES_HEADLESS", true),
			NoSandbox:         envBoolOr("JOBPAGES_NO_SANDBOX", false),
			BrowserBin:        os.Getenv("JOBPAGES_BROWSER_BIN"),
			Stealth:           envBoolOr("JOBPAGES_STEALTH", false),
			NavigationTimeout: envDurationOr("JOBPAGES_NAV_TIMEOUT", 60*time.Second),
			IdleQuiet:         envDurationOr("JOBPAGES_IDLE_QUIET", 500*time.Millisecond),
			SettleDelay:       envDurationOr("JOBPAGES_SETTLE_DELAY", 1500*time.Millisecond),
		},
		Server: ServerConfig{
			Host: envOr("JOBPAGES_HOST", "127.0.0.1"),
			Port: envIntOr("JOBPAGES_PORT", 8080),
			Mode: envOr("JOBPAGES_MODE", "release"),
		},
		Webhook: WebhookConfig{
			URL:    os.Getenv("JOBPAGES_WEBHOOK_URL"),
			Secret: os.Getenv("JOBPAGES_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("JOBPAGES_LOG_LEVEL", "info"),
			Format: envOr("JOBPAGES_LOG_FORMAT", "text"),
		},
	}
}

// NewLogger builds a slog.Logger writing to w according to the LogConfig.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
