// Package storage holds the two persistence sinks for assembled deals:
// a Postgres store (truncate-and-reload into deals/deal_items) and a JSON
// file writer. The sinks are independent; a failure in one never touches
// the other.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khizerinam08/deal-checker/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS deals (
	id SERIAL PRIMARY KEY,
	deal_name TEXT NOT NULL,
	price_pkr INTEGER NOT NULL,
	description TEXT,
	satiety_score INTEGER,
	satiety_tier VARCHAR(50),
	image_url TEXT,
	product_url TEXT,
	source VARCHAR(50) NOT NULL DEFAULT 'Dominos PK'
);

CREATE TABLE IF NOT EXISTS deal_items (
	id SERIAL PRIMARY KEY,
	deal_id INTEGER NOT NULL REFERENCES deals(id) ON DELETE CASCADE,
	item TEXT NOT NULL,
	qty INTEGER NOT NULL DEFAULT 1,
	score INTEGER NOT NULL DEFAULT 0
);`

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates and verifies a pgxpool connection pool.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// EnsureSchema creates the deals and deal_items tables if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveDeals replaces all stored deals with the given run's output in one
// transaction: truncate both tables (children go via the cascade), insert
// every parent row, then every child row. Any failure rolls the whole thing
// back, leaving the previously stored run intact.
func (s *PostgresStore) SaveDeals(ctx context.Context, deals []models.Deal) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE deals RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate deals: %w", err)
	}

	for _, deal := range deals {
		var dealID int
		err := tx.QueryRow(ctx,
			`INSERT INTO deals (deal_name, price_pkr, description, satiety_score, satiety_tier, image_url, product_url, source)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			deal.Name, deal.PricePKR, deal.Description, deal.SatietyScore,
			nullIfEmpty(string(deal.SatietyTier)), nullIfEmpty(deal.ImageURL),
			nullIfEmpty(deal.ProductURL), deal.Source,
		).Scan(&dealID)
		if err != nil {
			return fmt.Errorf("failed to insert deal %q: %w", deal.Name, err)
		}

		if len(deal.ItemsBreakdown) == 0 {
			continue
		}

		batch := &pgx.Batch{}
		for _, item := range deal.ItemsBreakdown {
			batch.Queue(
				`INSERT INTO deal_items (deal_id, item, qty, score) VALUES ($1, $2, $3, $4)`,
				dealID, string(item.Item), item.Qty, item.Score,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert items for deal %q: %w", deal.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit deals: %w", err)
	}

	slog.Info("Saved deals to Postgres", "count", len(deals))
	return nil
}

// ListDeals returns the stored deals with their item breakdowns, in insert
// order.
func (s *PostgresStore) ListDeals(ctx context.Context) ([]models.Deal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, deal_name, price_pkr, COALESCE(description, ''), satiety_score,
		        COALESCE(satiety_tier, ''), COALESCE(image_url, ''), COALESCE(product_url, ''), source
		 FROM deals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	var ids []int
	for rows.Next() {
		var (
			id   int
			deal models.Deal
			tier string
		)
		if err := rows.Scan(&id, &deal.Name, &deal.PricePKR, &deal.Description,
			&deal.SatietyScore, &tier, &deal.ImageURL, &deal.ProductURL, &deal.Source); err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		deal.SatietyTier = models.SatietyTier(tier)
		deals = append(deals, deal)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deal rows: %w", err)
	}

	if len(deals) == 0 {
		return deals, nil
	}

	itemRows, err := s.pool.Query(ctx,
		`SELECT deal_id, item, qty, score FROM deal_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deal items: %w", err)
	}
	defer itemRows.Close()

	indexByID := make(map[int]int, len(ids))
	for i, id := range ids {
		indexByID[id] = i
	}

	for itemRows.Next() {
		var (
			dealID int
			item   string
			entry  models.ItemEntry
		)
		if err := itemRows.Scan(&dealID, &item, &entry.Qty, &entry.Score); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		entry.Item = models.Category(item)
		if i, ok := indexByID[dealID]; ok {
			deals[i].ItemsBreakdown = append(deals[i].ItemsBreakdown, entry)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read item rows: %w", err)
	}

	return deals, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
