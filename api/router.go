package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/jobpages/api/handler"
	"github.com/use-agent/jobpages/config"
)

// PagesPrefix returns the URL path under which the output directory is
// served. It mirrors the relative links written into the index page.
func PagesPrefix(cfg config.OutputConfig) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(cfg.IndexPath), cfg.Dir)
	if err != nil {
		return "", fmt.Errorf("api: output dir %s: %w", cfg.Dir, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("api: output dir %s must be a subdirectory of the index directory", cfg.Dir)
	}
	return "/" + rel, nil
}

// NewRouter creates a configured Gin engine serving the generated index,
// the saved pages, and a small JSON API.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
func NewRouter(cfg *config.Config, startTime time.Time) (*gin.Engine, error) {
	prefix, err := PagesPrefix(cfg.Output)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(cfg.Output.IndexPath); err != nil {
			c.String(http.StatusNotFound, "no index yet: run jobpages first")
			return
		}
		c.File(cfg.Output.IndexPath)
	})
	r.Static(prefix, cfg.Output.Dir)

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health(cfg.Output, startTime))
	v1.GET("/pages", handler.Pages(cfg.Output.Dir, prefix))

	return r, nil
}
