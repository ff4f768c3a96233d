// Package scheduler wires up the cron job that periodically re-runs the
// scrape in server mode.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/khizerinam08/deal-checker/internal/processor"
)

type Scheduler struct {
	cron      *cron.Cron
	processor *processor.DealProcessor
	spec      string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every interval.
func New(p *processor.DealProcessor, interval time.Duration) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		processor: p,
		spec:      fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the job and starts the scheduler. Also runs one scrape
// immediately so the output is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runScrape(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	slog.Info("Scrape scheduler started", "spec", s.spec)

	go s.runScrape(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("Scrape scheduler stopped")
}

func (s *Scheduler) runScrape(ctx context.Context) {
	slog.Info("Scheduled scrape starting")
	if err := s.processor.Run(ctx); err != nil {
		slog.Error("Scheduled scrape failed", "error", err)
		return
	}
	slog.Info("Scheduled scrape finished")
}
