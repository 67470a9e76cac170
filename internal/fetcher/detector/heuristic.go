// Package detector decides when a statically fetched page needs a real browser.
package detector

import (
	"strings"

	"github.com/JakeFAU/contact-scraper/internal/fetcher"
)

const defaultThreshold = 2048

// Heuristic implements a handful of rule-based promotions.
type Heuristic struct {
	BodyLengthThreshold int
}

// NewHeuristic creates a new detector.
func NewHeuristic(threshold int) *Heuristic {
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	return &Heuristic{BodyLengthThreshold: threshold}
}

var spaMarkers = []string{
	"__next",
	`id="root"`,
	`id="app"`,
	"data-reactroot",
	"ng-app",
}

// ShouldPromote reports whether page looks like a script shell whose contact
// details only appear after rendering.
func (h *Heuristic) ShouldPromote(page fetcher.Page) bool {
	if page.StatusCode != 200 {
		return false
	}
	if len(page.HTML) == 0 {
		return true
	}
	lower := strings.ToLower(page.HTML)
	if len(lower) < h.BodyLengthThreshold && scriptDensityHigh(lower) {
		return true
	}
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// scriptDensityHigh reports whether <script> elements, tags included, cover at
// least a quarter of lower. An unterminated script runs to the end of the page.
func scriptDensityHigh(lower string) bool {
	if lower == "" {
		return false
	}
	covered := 0
	rest := lower
	for {
		open := strings.Index(rest, "<script")
		if open < 0 {
			break
		}
		rest = rest[open:]
		end := -1
		if gt := strings.IndexByte(rest, '>'); gt >= 0 {
			if closing := strings.Index(rest[gt:], "</script>"); closing >= 0 {
				end = gt + closing + len("</script>")
			}
		}
		if end < 0 {
			covered += len(rest)
			break
		}
		covered += end
		rest = rest[end:]
	}
	return covered*4 >= len(lower)
}
