// Package sources lists the job boards jobpages snapshots and how each one
// is addressed.
package sources

import (
	"net/url"

	"github.com/use-agent/jobpages/engine"
)

// Engine names a Source can ask for. Browser sources are switched to
// EngineRodStealth when stealth is enabled in the browser config.
const (
	EngineHTTP       = "http"
	EngineRod        = engine.RodName
	EngineRodStealth = engine.RodStealthName
)

// Source is one fixed job board.
type Source struct {
	// Label is the human-readable name shown in the summary.
	Label string

	// Prefix starts every snapshot file name for this source.
	Prefix string

	// Engine is the name of the engine that fetches this source.
	Engine string

	// UserAgent, when set, replaces the browser's default user agent.
	UserAgent string

	// Headers are sent with every request to this source.
	Headers map[string]string

	// URL builds the search URL for a keyword.
	URL func(keyword string) string
}

// Request builds the engine request for keyword.
func (s Source) Request(keyword string) *engine.FetchRequest {
	req := &engine.FetchRequest{
		URL:       s.URL(keyword),
		UserAgent: s.UserAgent,
	}
	if len(s.Headers) > 0 {
		req.Headers = make(map[string]string, len(s.Headers))
		for k, v := range s.Headers {
			req.Headers[k] = v
		}
	}
	return req
}

// IsBrowser reports whether the source is rendered in a headless browser.
func (s Source) IsBrowser() bool {
	return s.Engine == EngineRod || s.Engine == EngineRodStealth
}

// Default returns the three job boards in the order they are fetched.
func Default() []Source {
	return []Source{
		{
			Label:  "BerlinStartupJobs",
			Prefix: "berlin",
			Engine: EngineRod,
			URL: func(keyword string) string {
				return "https://berlinstartupjobs.com/skill-areas/" + url.PathEscape(keyword) + "/"
			},
		},
		{
			Label:  "Web3Career",
			Prefix: "web3",
			Engine: EngineHTTP,
			URL: func(keyword string) string {
				return "https://web3.career/?" + url.Values{"search": {keyword}}.Encode()
			},
		},
		{
			Label:     "WeWorkRemotely",
			Prefix:    "wework",
			Engine:    EngineRod,
			UserAgent: engine.DefaultUserAgent,
			Headers:   map[string]string{"Accept-Language": "en-US,en;q=0.9"},
			URL: func(keyword string) string {
				return "https://weworkremotely.com/remote-jobs/search?" + url.Values{"term": {keyword}}.Encode()
			},
		},
	}
}

// WithStealth returns a copy of srcs with browser sources moved to the
// rod-stealth engine.
func WithStealth(srcs []Source) []Source {
	out := make([]Source, len(srcs))
	for i, s := range srcs {
		if s.IsBrowser() {
			s.Engine = EngineRodStealth
		}
		out[i] = s
	}
	return out
}
