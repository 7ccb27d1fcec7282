package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// PageHealth is a best-effort look at a fetched document. It never affects
// whether a fetch succeeded; callers only log and display it.
type PageHealth struct {
	Title   string
	Blocked bool
	Reason  string
}

// challengeSelector matches markup left by common bot challenges and captchas.
var challengeSelector = cascadia.MustCompile(
	`#challenge-form, #challenge-running, .cf-browser-verification, ` +
		`.g-recaptcha, .h-captcha, .captcha, [data-captcha], iframe[src*="captcha"]`,
)

var challengeTitles = []string{
	"just a moment",
	"attention required",
	"access denied",
	"verify you are human",
}

// Inspect parses the document and reports its title and whether it looks
// like a bot-challenge page instead of the requested listing.
func Inspect(htmlStr string) PageHealth {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return PageHealth{}
	}

	h := PageHealth{Title: strings.TrimSpace(doc.Find("title").First().Text())}

	lower := strings.ToLower(h.Title)
	for _, t := range challengeTitles {
		if strings.Contains(lower, t) {
			h.Blocked = true
			h.Reason = "challenge title: " + h.Title
			return h
		}
	}

	if doc.FindMatcher(challengeSelector).Length() > 0 {
		h.Blocked = true
		h.Reason = "challenge markup"
	}
	return h
}
