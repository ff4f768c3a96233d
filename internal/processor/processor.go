// Package processor owns one scrape run end to end: extract raw candidates,
// assemble them into deals, and hand the result to each persistence sink.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/khizerinam08/deal-checker/internal/assembler"
)

type DealProcessor struct {
	extractor Extractor
	assembler *assembler.Assembler
	file      FileWriter
	store     DealStore // nil when no database is configured
}

func New(extractor Extractor, a *assembler.Assembler, file FileWriter, store DealStore) *DealProcessor {
	return &DealProcessor{
		extractor: extractor,
		assembler: a,
		file:      file,
		store:     store,
	}
}

// Run executes one scrape. Extraction failure is fatal and produces no
// output. The two sinks are independent: a storage failure is reported but
// never undoes the JSON file, and vice versa.
func (p *DealProcessor) Run(ctx context.Context) error {
	candidates, err := p.extractor.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	slog.Info("Extracted deal candidates", "count", len(candidates))

	deals := p.assembler.Assemble(candidates)
	slog.Info("Assembled deals", "count", len(deals), "dropped", len(candidates)-len(deals))

	var sinkErrs []error
	if err := p.file.Write(deals); err != nil {
		slog.Error("JSON sink failed", "error", err)
		sinkErrs = append(sinkErrs, fmt.Errorf("json sink: %w", err))
	}

	if p.store != nil {
		if err := p.store.SaveDeals(ctx, deals); err != nil {
			slog.Error("Postgres sink failed, previously stored deals are untouched", "error", err)
			sinkErrs = append(sinkErrs, fmt.Errorf("postgres sink: %w", err))
		}
	}

	return errors.Join(sinkErrs...)
}
