package models

import "time"

// OutputFile associates a source label with the snapshot written for it.
type OutputFile struct {
	Source  string `json:"source"`
	Path    string `json:"path"`
	Title   string `json:"title,omitempty"`
	Bytes   int    `json:"bytes"`
	Engine  string `json:"engine"`
	Blocked bool   `json:"blocked,omitempty"`
}

// RunReport summarises one completed run.
type RunReport struct {
	ID        string        `json:"id"`
	Keyword   string        `json:"keyword"`
	Stamp     string        `json:"stamp"`
	Files     []OutputFile  `json:"files"`
	IndexPath string        `json:"index_path"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"` // "healthy" or "degraded"
	Uptime  string `json:"uptime"`
	Pages   int    `json:"pages"`
	Version string `json:"version"`
}

// PageEntry describes one saved snapshot in the output directory.
type PageEntry struct {
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// PagesResponse is the response for GET /api/v1/pages.
type PagesResponse struct {
	Pages []PageEntry `json:"pages"`
	Total int         `json:"total"`
}
