package scraper

import (
	"encoding/json"
	"fmt"
	"os"
)

type SelectorConfig struct {
	Menu MenuSelectors `json:"menu"`
}

// MenuSelectors describes where deal data lives on the rendered menu page.
// Deal entries are distinguished from plain items by the anchor href prefix:
// deals link to "#combo_...", regular items to "#item_...". Each deal renders
// two anchors with the same href; only the one inside the details block has
// a heading and price, so extraction keys off those being present.
type MenuSelectors struct {
	DealAnchor    string `json:"deal_anchor"`    // e.g. `a[href^="#combo_"]`
	Title         string `json:"title"`          // heading inside the anchor
	Price         string `json:"price"`          // price span inside the anchor
	Description   string `json:"description"`    // optional paragraph inside the anchor
	CardContainer string `json:"card_container"` // shared ancestor holding the image
	Image         string `json:"image"`          // image element under the container
}

// LoadSelectors loads the selector configuration from the specified JSON file.
func LoadSelectors(path string) (SelectorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to read selector config file: %w", err)
	}

	return LoadSelectorsFromBytes(data)
}

// LoadSelectorsFromBytes parses selector configuration from raw JSON bytes.
// This supports loading from embedded data via go:embed.
func LoadSelectorsFromBytes(data []byte) (SelectorConfig, error) {
	var config SelectorConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to parse selector config JSON: %w", err)
	}

	return config, nil
}

// DefaultSelectors returns the fallback configuration if no JSON file is loaded.
// This is the single source of truth — the embedded selectors.json should be preferred.
func DefaultSelectors() SelectorConfig {
	return SelectorConfig{
		Menu: MenuSelectors{
			DealAnchor:    `a[href^="#combo_"]`,
			Title:         "h3",
			Price:         ".card-price",
			Description:   "p",
			CardContainer: ".menu-card",
			Image:         ".menu-img",
		},
	}
}
