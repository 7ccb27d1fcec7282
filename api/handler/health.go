package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/models"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Health returns a handler for GET /api/v1/health.
//
// Reports "degraded" while no index page has been generated yet.
func Health(cfg config.OutputConfig, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		if _, err := os.Stat(cfg.IndexPath); err != nil {
			status = "degraded"
		}

		entries, _ := listPages(cfg.Dir, "")

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Pages:   len(entries),
			Version: Version,
		})
	}
}
