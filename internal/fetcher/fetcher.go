// Package fetcher defines the contract shared by page fetchers.
package fetcher

import (
	"context"
	"time"
)

// DefaultUserAgent is sent by every fetcher. It is fixed on purpose and not exposed
// through configuration.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ImplicitWait is the ceiling for the page to become ready after navigation.
const ImplicitWait = 10 * time.Second

// Page is the rendered document returned by a Fetcher.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	HTML       string
	Duration   time.Duration
	Rendered   bool
}

// Fetcher retrieves the HTML of a single URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}
