package fetcher

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Detector decides whether a probed page should be fetched again with a browser.
type Detector interface {
	ShouldPromote(page Page) bool
}

// Promoting probes with a cheap fetcher and re-fetches with a browser only when the
// detector asks for it. A failed promotion falls back to the probe result.
type Promoting struct {
	probe    Fetcher
	browser  Fetcher
	detector Detector
	logger   *zap.Logger
}

// NewPromoting wires a Promoting fetcher.
func NewPromoting(probe, browser Fetcher, detector Detector, logger *zap.Logger) *Promoting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Promoting{probe: probe, browser: browser, detector: detector, logger: logger}
}

// Fetch implements Fetcher.
func (p *Promoting) Fetch(ctx context.Context, rawURL string) (Page, error) {
	page, err := p.probe.Fetch(ctx, rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("probe fetch: %w", err)
	}
	if p.browser == nil || p.detector == nil || !p.detector.ShouldPromote(page) {
		return page, nil
	}

	rendered, err := p.browser.Fetch(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return Page{}, fmt.Errorf("headless promotion: %w", ctx.Err())
		}
		p.logger.Warn("headless promotion failed", zap.String("url", rawURL), zap.Error(err))
		return page, nil
	}
	p.logger.Info("headless promotion applied", zap.String("url", rawURL))
	return rendered, nil
}
