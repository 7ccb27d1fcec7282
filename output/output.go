// Package output writes page snapshots to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/use-agent/jobpages/models"
)

// StampLayout formats run timestamps at second granularity.
const StampLayout = "20060102_150405"

// Stamp formats t for use in file names.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// FileName returns "<prefix>_<keyword>_<stamp>.html". Path separators,
// whitespace and the URL delimiters '#', '?' and '%' in the keyword become
// "-", so the name stays inside its directory and links to it verbatim.
func FileName(prefix, keyword, stamp string) string {
	return fmt.Sprintf("%s_%s_%s.html", prefix, slug(keyword), stamp)
}

func slug(keyword string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\#?%`, r) || unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, keyword)
}

// Writer places snapshot files inside Dir.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// EnsureDir creates the output directory if it is missing.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return models.NewFetchError(models.ErrCodeFilesystem, "create output directory "+w.Dir, err)
	}
	return nil
}

// Path returns the location of the file called name inside Dir.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Write stores content verbatim under name, replacing any existing file.
func (w *Writer) Write(name, content string) (string, error) {
	path := w.Path(name)
	if err := WriteFile(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes content to path as UTF-8 text with mode 0644.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return models.NewFetchError(models.ErrCodeFilesystem, "write "+path, err)
	}
	return nil
}
