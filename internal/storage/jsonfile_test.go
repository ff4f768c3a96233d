package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khizerinam08/deal-checker/internal/models"
)

func TestJSONFileWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "deals.json")
	f := NewJSONFile(path)

	score := 54
	deals := []models.Deal{
		{
			Name:         "Epic Medium Deal",
			PricePKR:     1250,
			Description:  "2 Medium Pizza + 1.5 Ltr Drink",
			SatietyScore: &score,
			SatietyTier:  models.TierHeavy,
			ItemsBreakdown: []models.ItemEntry{
				{Item: models.CategoryMediumPizza, Qty: 2, Score: 50},
				{Item: models.CategoryDrink15L, Qty: 1, Score: 4},
			},
			ProductURL: "https://www.dominos.com.pk/menu#combo_EpicMediumDeal_224",
			Source:     "Dominos PK",
		},
	}

	if err := f.Write(deals); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(raw), `"deal_name": "Epic Medium Deal"`) {
		t.Errorf("output not indented with expected field names:\n%s", raw)
	}

	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Read() returned %d deals, want 1", len(got))
	}
	if got[0].Name != deals[0].Name || got[0].PricePKR != deals[0].PricePKR {
		t.Errorf("round-trip mismatch: %+v", got[0])
	}
	if got[0].SatietyScore == nil || *got[0].SatietyScore != 54 {
		t.Errorf("SatietyScore = %v, want 54", got[0].SatietyScore)
	}
	if len(got[0].ItemsBreakdown) != 2 {
		t.Errorf("ItemsBreakdown = %+v, want 2 entries", got[0].ItemsBreakdown)
	}
}

func TestJSONFileWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.json")
	f := NewJSONFile(path)

	if err := f.Write([]models.Deal{{Name: "Old Deal", PricePKR: 500, Source: "Dominos PK"}}); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	if err := f.Write([]models.Deal{{Name: "New Deal", PricePKR: 600, Source: "Dominos PK"}}); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "New Deal" {
		t.Errorf("Read() = %+v, want only the second run's deal", got)
	}
}

func TestJSONFileReadMissing(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := f.Read(); err == nil {
		t.Error("Read() on missing file should fail")
	}
}
