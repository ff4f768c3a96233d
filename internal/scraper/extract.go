package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/khizerinam08/deal-checker/internal/models"
)

// Extractor is the extraction adapter: it has the browser render the menu
// page and pulls raw deal candidates out of the resulting DOM.
type Extractor struct {
	browser   *Browser
	selectors SelectorConfig
}

func NewExtractor(browser *Browser, selectors SelectorConfig) *Extractor {
	return &Extractor{browser: browser, selectors: selectors}
}

func (e *Extractor) Extract(ctx context.Context) ([]models.RawCandidate, error) {
	html, err := e.browser.FetchRenderedHTML(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractCandidates(html, e.selectors)
}

// ExtractCandidates parses rendered menu HTML and returns one candidate per
// deal anchor that carries both a title and a price. The image lives in a
// sibling card element, so it is looked up through the shared ancestor.
func ExtractCandidates(html string, selectors SelectorConfig) ([]models.RawCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}

	sel := selectors.Menu
	var candidates []models.RawCandidate

	doc.Find(sel.DealAnchor).Each(func(_ int, anchor *goquery.Selection) {
		title := strings.TrimSpace(anchor.Find(sel.Title).First().Text())
		price := strings.TrimSpace(anchor.Find(sel.Price).First().Text())

		// Each deal renders a second anchor with the same href around the
		// image only; those have no heading or price and are skipped here.
		if title == "" || price == "" {
			return
		}

		candidate := models.RawCandidate{
			Title:       title,
			PriceText:   price,
			Description: strings.TrimSpace(anchor.Find(sel.Description).First().Text()),
			AnchorRef:   anchor.AttrOr("href", ""),
		}

		if card := anchor.Closest(sel.CardContainer); card.Length() > 0 {
			candidate.ImageURL = card.Find(sel.Image).First().AttrOr("src", "")
		}

		candidates = append(candidates, candidate)
	})

	if len(candidates) == 0 {
		slog.Warn("No deal candidates found on rendered page. Potential page structure change.",
			"selector", sel.DealAnchor)
	}

	return candidates, nil
}
