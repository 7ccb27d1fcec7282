// Package runner drives one snapshot run: resolve the keyword, fetch every
// source in order, then write the pages and the summary index.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/engine"
	"github.com/use-agent/jobpages/models"
	"github.com/use-agent/jobpages/output"
	"github.com/use-agent/jobpages/report"
	"github.com/use-agent/jobpages/sources"
	"github.com/use-agent/jobpages/webhook"
)

// Runner executes snapshot runs. Fetches run strictly one after another and
// the first failure aborts the run before any page file is written.
type Runner struct {
	engines        map[string]engine.Engine
	sources        []sources.Source
	writer         *output.Writer
	indexPath      string
	defaultKeyword string
	webhook        config.WebhookConfig
	now            func() time.Time
}

// Option customises a Runner.
type Option func(*Runner)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithSources replaces the default source catalogue.
func WithSources(srcs []sources.Source) Option {
	return func(r *Runner) { r.sources = srcs }
}

// WithWebhook enables the run.completed notification.
func WithWebhook(cfg config.WebhookConfig) Option {
	return func(r *Runner) { r.webhook = cfg }
}

// New creates a Runner writing under cfg and fetching through engines,
// which are looked up by Name().
func New(cfg config.OutputConfig, engines []engine.Engine, opts ...Option) *Runner {
	r := &Runner{
		engines:        make(map[string]engine.Engine, len(engines)),
		sources:        sources.Default(),
		writer:         output.NewWriter(cfg.Dir),
		indexPath:      cfg.IndexPath,
		defaultKeyword: cfg.DefaultKeyword,
		now:            time.Now,
	}
	for _, e := range engines {
		r.engines[e.Name()] = e
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultKeyword returns the keyword used when the caller supplies none.
func (r *Runner) DefaultKeyword() string {
	return r.defaultKeyword
}

type fetched struct {
	src    sources.Source
	result *engine.FetchResult
	health engine.PageHealth
}

// Run snapshots every source for keyword. An empty keyword resolves to the
// default. On error no page file and no index are written.
func (r *Runner) Run(ctx context.Context, keyword string) (*models.RunReport, error) {
	keyword = ResolveKeyword(keyword, r.defaultKeyword)
	startedAt := r.now()
	stamp := output.Stamp(startedAt)

	if err := r.writer.EnsureDir(); err != nil {
		return nil, err
	}

	slog.Info("run started", "keyword", keyword, "stamp", stamp, "sources", len(r.sources))

	results := make([]fetched, 0, len(r.sources))
	for _, src := range r.sources {
		f, err := r.fetch(ctx, src, keyword)
		if err != nil {
			return nil, err
		}
		results = append(results, f)
	}

	rep := &models.RunReport{
		ID:        uuid.NewString(),
		Keyword:   keyword,
		Stamp:     stamp,
		IndexPath: r.indexPath,
		StartedAt: startedAt,
		Files:     make([]models.OutputFile, 0, len(results)),
	}

	for _, f := range results {
		path, err := r.writer.Write(output.FileName(f.src.Prefix, keyword, stamp), f.result.HTML)
		if err != nil {
			return nil, err
		}
		title := f.result.Title
		if title == "" {
			title = f.health.Title
		}
		rep.Files = append(rep.Files, models.OutputFile{
			Source:  f.src.Label,
			Path:    path,
			Title:   title,
			Bytes:   len(f.result.HTML),
			Engine:  f.result.EngineName,
			Blocked: f.health.Blocked,
		})
		slog.Debug("page written", "source", f.src.Label, "path", path)
	}

	if err := report.WriteIndex(rep); err != nil {
		return nil, err
	}
	rep.Duration = r.now().Sub(startedAt)

	slog.Info("run complete",
		"id", rep.ID,
		"keyword", keyword,
		"index", rep.IndexPath,
		"duration", rep.Duration,
	)

	r.notify(ctx, rep)
	return rep, nil
}

func (r *Runner) fetch(ctx context.Context, src sources.Source, keyword string) (fetched, error) {
	if err := ctx.Err(); err != nil {
		return fetched{}, fmt.Errorf("runner: %s: %w", src.Label, err)
	}

	eng, ok := r.engines[src.Engine]
	if !ok {
		return fetched{}, fmt.Errorf("runner: %s: no engine named %q", src.Label, src.Engine)
	}

	req := src.Request(keyword)
	slog.Info("fetching", "source", src.Label, "engine", eng.Name(), "url", req.URL)

	start := time.Now()
	result, err := eng.Fetch(ctx, req)
	if err != nil {
		var fe *models.FetchError
		if errors.As(err, &fe) && fe.Source == "" {
			fe.Source = src.Label
		}
		slog.Error("fetch failed", "source", src.Label, "url", req.URL, "error", err)
		return fetched{}, fmt.Errorf("runner: %w", err)
	}

	health := engine.Inspect(result.HTML)
	if health.Blocked {
		slog.Warn("page looks like a bot challenge",
			"source", src.Label,
			"reason", health.Reason,
		)
	}
	slog.Info("fetched",
		"source", src.Label,
		"status", result.StatusCode,
		"bytes", len(result.HTML),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return fetched{src: src, result: result, health: health}, nil
}

func (r *Runner) notify(ctx context.Context, rep *models.RunReport) {
	if r.webhook.URL == "" {
		return
	}
	event := &webhook.Event{
		Type:      webhook.EventRunCompleted,
		RunID:     rep.ID,
		Timestamp: r.now().Unix(),
		Data:      rep,
	}
	if err := webhook.Deliver(ctx, r.webhook.URL, r.webhook.Secret, event); err != nil {
		slog.Warn("webhook delivery failed", "url", r.webhook.URL, "error", err)
		return
	}
	slog.Info("webhook delivered", "url", r.webhook.URL, "event", event.Type)
}
