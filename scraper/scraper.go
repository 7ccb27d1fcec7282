package scraper

import (
	"context"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/engine"
	"github.com/use-agent/jobpages/models"
)

// Scraper renders pages in a headless browser. Every Fetch owns a fresh
// browser process that is torn down before Fetch returns, so a Scraper holds
// no browser state between calls.
type Scraper struct {
	cfg config.BrowserConfig
}

// NewScraper creates a Scraper for the given browser configuration.
func NewScraper(cfg config.BrowserConfig) *Scraper {
	return &Scraper{cfg: cfg}
}

// newLauncher builds the launcher for one isolated browser instance.
func (s *Scraper) newLauncher() *launcher.Launcher {
	l := launcher.New().
		Headless(s.cfg.Headless).
		NoSandbox(s.cfg.NoSandbox)

	if s.cfg.BrowserBin != "" {
		l = l.Bin(s.cfg.BrowserBin)
	}

	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-features"), "AudioServiceOutOfProcess,TranslateUI")
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))
	return l
}

// Fetch launches a browser, renders req.URL and returns the serialized DOM.
//
// Lifecycle:
//
//  1. Launch             – start a browser process with its own profile dir
//  2. DEFER: teardown    – kill the process and remove the profile dir
//  3. Connect            – attach over CDP
//  4. DEFER: close       – close the browser connection
//  5. Open page          – new blank target
//  6. Render             – see render() in page.go
//
// The deferred steps run on every exit path, including errors and
// context expiry, so no Chrome process outlives the call.
func (s *Scraper) Fetch(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	// ── 1. Launch ────────────────────────────────────────────────────
	l := s.newLauncher().Context(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewFetchError(
			models.ErrCodeBrowserLaunch,
			"failed to launch browser",
			err,
		)
	}
	slog.Debug("browser launched", "controlURL", controlURL, "url", req.URL)

	// ── 2. DEFER: teardown ───────────────────────────────────────────
	defer func() {
		l.Kill()
		l.Cleanup()
		slog.Debug("browser torn down", "url", req.URL)
	}()

	// ── 3. Connect ───────────────────────────────────────────────────
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewFetchError(
			models.ErrCodeBrowserLaunch,
			"failed to connect to browser",
			err,
		)
	}

	// ── 4. DEFER: close ──────────────────────────────────────────────
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			slog.Debug("browser close failed", "error", closeErr)
		}
	}()

	// ── 5. Open page ─────────────────────────────────────────────────
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, models.NewFetchError(
			models.ErrCodeBrowserLaunch,
			"failed to open page",
			err,
		)
	}

	// ── 6. Render ────────────────────────────────────────────────────
	return s.render(ctx, page, req)
}
