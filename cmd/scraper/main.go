package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/khizerinam08/deal-checker/internal/assembler"
	"github.com/khizerinam08/deal-checker/internal/classifier"
	"github.com/khizerinam08/deal-checker/internal/config"
	"github.com/khizerinam08/deal-checker/internal/processor"
	"github.com/khizerinam08/deal-checker/internal/scraper"
	"github.com/khizerinam08/deal-checker/internal/storage"
	"github.com/khizerinam08/deal-checker/internal/validator"
)

func main() {
	slog.Info("Starting Dominos deal scrape...")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	selectors, err := scraper.LoadConfig()
	if err != nil {
		slog.Warn("Failed to load selectors. Using defaults.", "error", err)
		selectors = scraper.DefaultSelectors()
	}

	browser := scraper.NewBrowser(cfg.MenuURL, cfg.PageLoadTimeout, cfg.ScrollInterval, cfg.MaxScrollIterations)
	extractor := scraper.NewExtractor(browser, selectors)

	c := classifier.New(classifier.DefaultConfig(cfg.SatietyScoring))
	a := assembler.New(c, validator.New(), cfg.MenuURL, cfg.MinDealPrice)
	file := storage.NewJSONFile(cfg.OutputPath)

	var store processor.DealStore
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("Critical error connecting to Postgres", "error", err)
			os.Exit(1)
		}
		defer pg.Close()

		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("Critical error ensuring schema", "error", err)
			os.Exit(1)
		}
		store = pg
	}

	p := processor.New(extractor, a, file, store)
	if err := p.Run(ctx); err != nil {
		if errors.Is(err, scraper.ErrPageNotReady) {
			slog.Error("Menu page never became ready, aborting without output", "error", err)
		} else {
			slog.Error("Scrape run failed", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("Scrape run finished")
}
