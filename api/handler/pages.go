package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/jobpages/models"
)

// Pages returns a handler for GET /api/v1/pages listing saved snapshots,
// newest first.
func Pages(dir, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := listPages(dir, prefix)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.PagesResponse{Pages: entries, Total: len(entries)})
	}
}

// listPages reads the .html files in dir. A missing dir is an empty list.
func listPages(dir, prefix string) ([]models.PageEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.PageEntry{}, nil
		}
		return nil, err
	}

	pages := make([]models.PageEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		pages = append(pages, models.PageEntry{
			Name:     e.Name(),
			URL:      path.Join(prefix, e.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Modified.Equal(pages[j].Modified) {
			return pages[i].Name < pages[j].Name
		}
		return pages[i].Modified.After(pages[j].Modified)
	})
	return pages, nil
}
