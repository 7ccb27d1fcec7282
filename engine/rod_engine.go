package engine

import (
	"context"
	"fmt"
)

// Browser engine names. Sources that need stealth are routed to
// RodStealthName.
const (
	RodName        = "rod"
	RodStealthName = "rod-stealth"
)

// RodFetchFunc renders one page in a scoped headless browser.
// runner.Engines binds it to scraper.Scraper.Fetch, which keeps this package
// free of a scraper import.
type RodFetchFunc func(ctx context.Context, req *FetchRequest) (*FetchResult, error)

// RodEngine exposes a RodFetchFunc as an Engine.
type RodEngine struct {
	render  RodFetchFunc
	stealth bool
}

// NewRodEngine returns the "rod" engine, or "rod-stealth" when stealth is set.
// The stealth engine injects the stealth script on every request.
func NewRodEngine(render RodFetchFunc, stealth bool) *RodEngine {
	return &RodEngine{render: render, stealth: stealth}
}

func (e *RodEngine) Name() string {
	if e.stealth {
		return RodStealthName
	}
	return RodName
}

func (e *RodEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if e.render == nil {
		return nil, fmt.Errorf("%s: no browser configured", e.Name())
	}

	// copy so the caller's request keeps its Stealth value
	r := *req
	r.Stealth = r.Stealth || e.stealth

	result, err := e.render(ctx, &r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), err)
	}
	result.EngineName = e.Name()
	return result, nil
}
