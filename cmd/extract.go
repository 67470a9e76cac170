package cmd

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/JakeFAU/contact-scraper/internal/config"
	"github.com/JakeFAU/contact-scraper/internal/extract"
	"github.com/JakeFAU/contact-scraper/internal/fetcher"
	"github.com/JakeFAU/contact-scraper/internal/fetcher/detector"
	"github.com/JakeFAU/contact-scraper/internal/fetcher/headless"
	"github.com/JakeFAU/contact-scraper/internal/fetcher/static"
	"github.com/JakeFAU/contact-scraper/internal/logging"
)

// newFetcher is the fetcher factory. It's a variable so tests can avoid launching
// a browser.
var newFetcher = buildFetcher

var newLogger = logging.New

func buildFetcher(cfg config.Config, logger *zap.Logger) fetcher.Fetcher {
	probe := static.New(static.Config{
		UserAgent: fetcher.DefaultUserAgent,
		Timeout:   fetcher.ImplicitWait,
	}, logger.Named("static"))
	browser := headless.New(headless.Config{
		UserAgent:   fetcher.DefaultUserAgent,
		ExecPath:    cfg.Browser.ExecPath,
		WaitTimeout: fetcher.ImplicitWait,
	}, logger.Named("headless"))

	switch cfg.Fetch.Mode {
	case config.FetchModeStatic:
		return probe
	case config.FetchModeAuto:
		return fetcher.NewPromoting(probe, browser,
			detector.NewHeuristic(cfg.Fetch.PromotionThreshold), logger.Named("promote"))
	default:
		return browser
	}
}

func runExtract(ctx context.Context, out io.Writer, rawURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg.Log.Development, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Debug("starting extraction",
		zap.String("url", rawURL),
		zap.String("fetch_mode", cfg.Fetch.Mode),
	)

	extractor := extract.New(newFetcher(cfg, logger), logger.Named("extract"))
	result, err := extractor.Run(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("extract %s: %w", rawURL, err)
	}

	for _, line := range result.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
