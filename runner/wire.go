package runner

import (
	"context"

	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/engine"
	"github.com/use-agent/jobpages/scraper"
	"github.com/use-agent/jobpages/sources"
)

// Engines builds the fetch engines for cfg: the plain HTTP engine and the
// rod / rod-stealth engines backed by one scoped-browser Scraper.
func Engines(cfg *config.Config) []engine.Engine {
	sc := scraper.NewScraper(cfg.Browser)

	// This closure keeps engine/ free of a scraper/ import.
	rodFetch := func(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
		return sc.Fetch(ctx, req)
	}

	return []engine.Engine{
		engine.NewHTTPEngine(cfg.HTTP.Timeout),
		engine.NewRodEngine(rodFetch, false),
		engine.NewRodEngine(rodFetch, true),
	}
}

// NewFromConfig wires a Runner with the default sources, the engines from
// Engines, and the webhook settings of cfg.
func NewFromConfig(cfg *config.Config, opts ...Option) *Runner {
	srcs := sources.Default()
	if cfg.Browser.Stealth {
		srcs = sources.WithStealth(srcs)
	}
	base := []Option{WithSources(srcs), WithWebhook(cfg.Webhook)}
	return New(cfg.Output, Engines(cfg), append(base, opts...)...)
}
