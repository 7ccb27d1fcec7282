package scraper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/use-agent/jobpages/engine"
	"github.com/use-agent/jobpages/models"
	"github.com/ysmood/gson"
)

// render navigates an open page and captures the rendered HTML.
//
// Lifecycle (numbered steps match the inline comments):
//
//  1. Timeout guard      – navigation + idle wait share one deadline
//  2. Stealth injection  – mask navigator.webdriver etc. (before navigation!)
//  3. Identity           – user agent override and extra headers
//  4. Idle listener      – MUST be registered before Navigate
//  5. Navigate
//  6. Wait               – network idle, bounded by the timeout guard
//  7. Settle             – fixed delay for client-side rendering
//  8. Extract            – page.HTML() + document.title
//
// Step 4 must precede step 5: WaitRequestIdle sets up a CDP listener; if it
// is registered after Navigate, in-flight requests are missed and the wait
// returns instantly (false idle).
func (s *Scraper) render(ctx context.Context, page *rod.Page, req *engine.FetchRequest) (*engine.FetchResult, error) {
	// ── 1. Timeout guard ──────────────────────────────────────────────
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.NavigationTimeout)
	defer cancel()

	// ── 2. Stealth injection ──────────────────────────────────────────
	if req.Stealth {
		if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
			slog.Warn("stealth injection failed, proceeding without stealth",
				"error", evalErr,
			)
		}
	}

	// ── 3. Identity ───────────────────────────────────────────────────
	if req.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      req.UserAgent,
			AcceptLanguage: "en-US,en;q=0.9",
		}); err != nil {
			return nil, categorizeError(err, "failed to override user agent")
		}
	}
	if len(req.Headers) > 0 {
		if err := (proto.NetworkSetExtraHTTPHeaders{
			Headers: toHeadersMap(req.Headers),
		}).Call(page); err != nil {
			slog.Warn("extra headers not applied",
				"url", req.URL,
				"error", err,
			)
		}
	}

	p := page.Context(navCtx)

	// ── 4. Idle listener ──────────────────────────────────────────────
	waitIdle := p.WaitRequestIdle(s.cfg.IdleQuiet, nil, nil, nil)

	// ── 5. Navigate ───────────────────────────────────────────────────
	if err := p.Navigate(req.URL); err != nil {
		return nil, categorizeError(err, "navigation to target URL failed")
	}

	// ── 6. Wait for network idle ──────────────────────────────────────
	waitIdle()
	if err := navCtx.Err(); err != nil {
		return nil, categorizeError(err, "network did not become idle")
	}

	// ── 7. Settle ─────────────────────────────────────────────────────
	if s.cfg.SettleDelay > 0 {
		select {
		case <-time.After(s.cfg.SettleDelay):
		case <-ctx.Done():
			return nil, categorizeError(ctx.Err(), "interrupted while settling")
		}
	}

	// ── 8. Extract ────────────────────────────────────────────────────
	out := page.Context(ctx)
	rawHTML, err := out.HTML()
	if err != nil {
		return nil, categorizeError(err, "failed to extract page HTML")
	}

	statusCode := 0
	if res, err := out.Eval(`() => {
		try {
			const entries = performance.getEntriesByType("navigation");
			if (entries.length > 0) return entries[0].responseStatus || 0;
		} catch(e) {}
		return 0;
	}`); err == nil {
		statusCode = res.Value.Int()
	}

	finalURL := evalStringOrEmpty(out, `() => window.location.href`)
	if finalURL == "" {
		finalURL = req.URL
	}

	return &engine.FetchResult{
		HTML:       rawHTML,
		Title:      evalStringOrEmpty(out, `() => document.title`),
		StatusCode: statusCode,
		FinalURL:   finalURL,
	}, nil
}

// evalStringOrEmpty evaluates a JS expression and returns the string result,
// swallowing any errors (useful for optional metadata extraction).
func evalStringOrEmpty(page *rod.Page, js string) string {
	res, err := page.Eval(js)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}

// categorizeError wraps raw browser errors into typed FetchErrors.
func categorizeError(err error, msg string) *models.FetchError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewFetchError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewFetchError(models.ErrCodeTimeout, "fetch canceled", err)
	default:
		return models.NewFetchError(models.ErrCodeNavigation, msg, err)
	}
}
