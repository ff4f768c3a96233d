package scraper

import (
	"testing"
)

const menuFixture = `
<html><body>
<div class="menu-section">
  <div class="menu-card">
    <div class="menue-card">
      <a href="#combo_EpicMediumDeal_224">
        <img class="menu-img" src="https://cdn.example.com/epic.jpg">
      </a>
    </div>
    <div class="menue-card-content">
      <a href="#combo_EpicMediumDeal_224">
        <h3>Epic Medium Deal</h3>
        <span class="card-price">Rs. 1,250</span>
        <p>2 Medium Pizza + 1.5 Ltr Drink</p>
      </a>
    </div>
  </div>
  <div class="menu-card">
    <div class="menue-card-content">
      <a href="#combo_WingsCombo_88">
        <h3>Wings Combo</h3>
        <span class="card-price">Rs. 899</span>
      </a>
    </div>
  </div>
  <div class="menu-card">
    <div class="menue-card-content">
      <a href="#item_AlfredoPizza_148">
        <h3>Alfredo Pizza</h3>
        <span class="card-price">Rs. 1,099</span>
      </a>
    </div>
  </div>
</div>
</body></html>`

func TestExtractCandidates(t *testing.T) {
	candidates, err := ExtractCandidates(menuFixture, DefaultSelectors())
	if err != nil {
		t.Fatalf("ExtractCandidates() error = %v", err)
	}

	// Regular items (#item_ hrefs) are not deals and must not appear.
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(candidates), candidates)
	}

	first := candidates[0]
	if first.Title != "Epic Medium Deal" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.PriceText != "Rs. 1,250" {
		t.Errorf("PriceText = %q", first.PriceText)
	}
	if first.Description != "2 Medium Pizza + 1.5 Ltr Drink" {
		t.Errorf("Description = %q", first.Description)
	}
	if first.AnchorRef != "#combo_EpicMediumDeal_224" {
		t.Errorf("AnchorRef = %q", first.AnchorRef)
	}
	if first.ImageURL != "https://cdn.example.com/epic.jpg" {
		t.Errorf("ImageURL = %q", first.ImageURL)
	}

	second := candidates[1]
	if second.Title != "Wings Combo" || second.Description != "" || second.ImageURL != "" {
		t.Errorf("second candidate = %+v, want title only, no description or image", second)
	}
}

func TestExtractCandidatesSkipsImageOnlyAnchors(t *testing.T) {
	candidates, err := ExtractCandidates(menuFixture, DefaultSelectors())
	if err != nil {
		t.Fatalf("ExtractCandidates() error = %v", err)
	}

	// The duplicate image-only anchor for the Epic deal shares its href but
	// has no heading; extraction must produce one candidate per deal card.
	for i, c := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if c.AnchorRef == candidates[j].AnchorRef {
				t.Errorf("duplicate anchor ref %q at %d and %d", c.AnchorRef, i, j)
			}
		}
	}
}

func TestExtractCandidatesEmptyPage(t *testing.T) {
	candidates, err := ExtractCandidates("<html><body></body></html>", DefaultSelectors())
	if err != nil {
		t.Fatalf("ExtractCandidates() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates from empty page, want 0", len(candidates))
	}
}

func TestLoadSelectorsFromBytes(t *testing.T) {
	data := []byte(`{"menu":{"deal_anchor":"a.deal","title":"h2","price":".price","description":"p","card_container":".card","image":"img"}}`)

	sel, err := LoadSelectorsFromBytes(data)
	if err != nil {
		t.Fatalf("LoadSelectorsFromBytes() error = %v", err)
	}
	if sel.Menu.DealAnchor != "a.deal" || sel.Menu.Title != "h2" {
		t.Errorf("parsed selectors = %+v", sel.Menu)
	}

	if _, err := LoadSelectorsFromBytes([]byte(`{not json`)); err == nil {
		t.Error("LoadSelectorsFromBytes() should fail on malformed JSON")
	}
}
