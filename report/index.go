// Package report renders the summary page and the console completion report.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/use-agent/jobpages/models"
	"github.com/use-agent/jobpages/output"
	"github.com/use-agent/jobpages/sources"
)

// Card is one source entry on the summary page.
type Card struct {
	Label   string
	Href    string
	Title   string
	Blocked bool
}

// IndexData is the input of the summary page template.
type IndexData struct {
	Keyword string
	Stamp   string
	Cards   []Card
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Job page snapshots</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 40px; }
      .card { padding: 16px; border: 1px solid #ddd; margin-bottom: 12px; }
      .warn { color: #b00; }
      a { text-decoration: none; }
    </style>
  </head>
  <body>
    <h1>Job page snapshots</h1>
    <p>Keyword: <strong>{{.Keyword}}</strong> / Generated: {{.Stamp}}</p>
{{- range .Cards}}
    <div class="card">
      <h2>{{.Label}}</h2>
      {{- if .Title}}
      <p>{{.Title}}</p>
      {{- end}}
      {{- if .Blocked}}
      <p class="warn">Looks like a bot challenge page.</p>
      {{- end}}
      <a href="{{.Href}}">Open HTML</a>
    </div>
{{- end}}
  </body>
</html>
`))

// NewIndexData builds the template input for rep. Links are relative to the
// directory holding the index file, use forward slashes and are escaped per
// segment. Cards follow the source catalogue order; unknown sources go last.
func NewIndexData(rep *models.RunReport) IndexData {
	base := filepath.Dir(rep.IndexPath)
	cards := make([]Card, 0, len(rep.Files))
	for _, f := range rep.Files {
		href := f.Path
		if rel, err := filepath.Rel(base, f.Path); err == nil {
			href = rel
		}
		cards = append(cards, Card{
			Label:   f.Source,
			Href:    escapeHref(filepath.ToSlash(href)),
			Title:   f.Title,
			Blocked: f.Blocked,
		})
	}

	rank := catalogueRank()
	sort.SliceStable(cards, func(i, j int) bool {
		return rankOf(rank, cards[i].Label) < rankOf(rank, cards[j].Label)
	})
	return IndexData{Keyword: rep.Keyword, Stamp: rep.Stamp, Cards: cards}
}

func escapeHref(p string) string {
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}

func catalogueRank() map[string]int {
	srcs := sources.Default()
	rank := make(map[string]int, len(srcs))
	for i, s := range srcs {
		rank[s.Label] = i
	}
	return rank
}

func rankOf(rank map[string]int, label string) int {
	if i, ok := rank[label]; ok {
		return i
	}
	return len(rank)
}

// RenderIndex writes the summary page for data to w.
func RenderIndex(w io.Writer, data IndexData) error {
	if err := indexTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("report: render index: %w", err)
	}
	return nil
}

// WriteIndex renders the summary page for rep and writes it to rep.IndexPath.
func WriteIndex(rep *models.RunReport) error {
	var buf bytes.Buffer
	if err := RenderIndex(&buf, NewIndexData(rep)); err != nil {
		return err
	}
	return output.WriteFile(rep.IndexPath, buf.String())
}

// PrintSummary writes the console completion report.
func PrintSummary(w io.Writer, rep *models.RunReport) {
	fmt.Fprintln(w, "Done:")
	for _, f := range rep.Files {
		fmt.Fprintf(w, "- %s: %s\n", f.Source, filepath.ToSlash(f.Path))
	}
	fmt.Fprintf(w, "- %s written\n", filepath.ToSlash(rep.IndexPath))
}
