package processor

import (
	"context"

	"github.com/khizerinam08/deal-checker/internal/models"
)

// Extractor abstracts the browser-driven extraction adapter.
type Extractor interface {
	Extract(ctx context.Context) ([]models.RawCandidate, error)
}

// DealStore abstracts the relational sink.
type DealStore interface {
	SaveDeals(ctx context.Context, deals []models.Deal) error
}

// FileWriter abstracts the JSON file sink.
type FileWriter interface {
	Write(deals []models.Deal) error
}
