package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/khizerinam08/deal-checker/internal/models"
)

// JSONFile writes the run's deals to a human-readable JSON array,
// overwriting the previous run's file.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) Write(deals []models.Deal) error {
	data, err := json.MarshalIndent(deals, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal deals: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}

	slog.Info("Wrote deals to JSON file", "path", f.path, "count", len(deals))
	return nil
}

// Read loads deals back from the output file. Used by the server's read
// path when no database is configured.
func (f *JSONFile) Read() ([]models.Deal, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var deals []models.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return deals, nil
}
