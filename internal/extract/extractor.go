// Package extract pulls contact details out of a rendered page: phone number
// candidates from the document text and a logo URL from its images.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/JakeFAU/contact-scraper/internal/fetcher"
)

// NoneText is printed in place of a missing value.
const NoneText = "None"

// Result holds what was found on a page.
type Result struct {
	Phones []string
	Logo   string
}

// PhoneLine is the first output line.
func (r Result) PhoneLine() string {
	return FormatPhones(r.Phones)
}

// LogoLine is the second output line.
func (r Result) LogoLine() string {
	return FormatLogo(r.Logo, r.Logo != "")
}

// Lines returns both output lines in print order.
func (r Result) Lines() []string {
	return []string{r.PhoneLine(), r.LogoLine()}
}

// Extractor fetches a page and runs the heuristics over it.
type Extractor struct {
	fetcher fetcher.Fetcher
	logger  *zap.Logger
}

// New wires an Extractor around f.
func New(f fetcher.Fetcher, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{fetcher: f, logger: logger}
}

// Run fetches rawURL and extracts from the rendered HTML. Only fetching and parsing
// can fail; an empty Result is a valid outcome.
func (e *Extractor) Run(ctx context.Context, rawURL string) (Result, error) {
	page, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetch page: %w", err)
	}
	e.logger.Info("page fetched",
		zap.String("url", rawURL),
		zap.String("final_url", page.FinalURL),
		zap.Int("status", page.StatusCode),
		zap.Bool("rendered", page.Rendered),
		zap.Duration("duration", page.Duration),
	)

	// Relative image paths resolve against the URL that was asked for.
	result, err := Analyze(page.HTML, rawURL)
	if err != nil {
		return Result{}, err
	}
	e.logger.Debug("extraction complete",
		zap.Int("phones", len(result.Phones)),
		zap.String("logo", result.Logo),
	)
	return result, nil
}

// Analyze runs both heuristics over an HTML document.
func Analyze(html, pageURL string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}
	logo, _ := FindLogo(doc, pageURL)
	return Result{
		Phones: FindPhones(doc.Text()),
		Logo:   logo,
	}, nil
}
