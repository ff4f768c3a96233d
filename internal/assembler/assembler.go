// Package assembler turns raw page candidates into the final deal records:
// it filters malformed and trivial entries, deduplicates within the run,
// and attaches each deal's classified item breakdown.
package assembler

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/khizerinam08/deal-checker/internal/classifier"
	"github.com/khizerinam08/deal-checker/internal/models"
	"github.com/khizerinam08/deal-checker/internal/util"
	"github.com/khizerinam08/deal-checker/internal/validator"
)

const (
	// currencyMarker must appear in the price text for a candidate to count.
	currencyMarker = "Rs."

	// Source is the provenance tag stamped on every deal.
	Source = "Dominos PK"
)

type Assembler struct {
	classifier *classifier.Classifier
	validator  *validator.Validator
	menuURL    string
	minPrice   int
}

// New builds an Assembler. menuURL is the base the anchor fragment is
// appended to; minPrice is the noise floor below which entries (sauces,
// dips) are dropped.
func New(c *classifier.Classifier, v *validator.Validator, menuURL string, minPrice int) *Assembler {
	return &Assembler{
		classifier: c,
		validator:  v,
		menuURL:    menuURL,
		minPrice:   minPrice,
	}
}

// Assemble converts candidates to deals in arrival order. A malformed
// candidate is skipped, never fatal to the batch. Two candidates with the
// same (name, price) pair collapse to the first one seen.
func (a *Assembler) Assemble(candidates []models.RawCandidate) []models.Deal {
	seen := make(map[string]struct{}, len(candidates))
	deals := make([]models.Deal, 0, len(candidates))

	for _, candidate := range candidates {
		deal, ok := a.assembleOne(candidate, seen)
		if !ok {
			continue
		}
		deals = append(deals, deal)
	}

	return deals
}

func (a *Assembler) assembleOne(candidate models.RawCandidate, seen map[string]struct{}) (models.Deal, bool) {
	if candidate.Title == "" || candidate.PriceText == "" || !strings.Contains(candidate.PriceText, currencyMarker) {
		slog.Debug("Skipping candidate without title or price", "title", candidate.Title, "price", candidate.PriceText)
		return models.Deal{}, false
	}

	digits := util.CleanNumericString(candidate.PriceText)
	if digits == "" {
		slog.Warn("Skipping candidate with no digits in price", "title", candidate.Title, "price", candidate.PriceText)
		return models.Deal{}, false
	}
	price := util.SafeAtoi(digits)

	key := candidate.Title + "-" + strconv.Itoa(price)
	if _, dup := seen[key]; dup {
		return models.Deal{}, false
	}
	if price < a.minPrice {
		return models.Deal{}, false
	}
	seen[key] = struct{}{}

	result := a.classifier.Classify(candidate.Title, candidate.Description)

	productURL := ""
	if candidate.AnchorRef != "" {
		productURL = a.menuURL + candidate.AnchorRef
	}

	deal := models.Deal{
		Name:           candidate.Title,
		PricePKR:       price,
		Description:    candidate.Description,
		SatietyScore:   result.TotalScore,
		ItemsBreakdown: result.Items,
		SatietyTier:    result.Tier,
		ImageURL:       candidate.ImageURL,
		ProductURL:     productURL,
		Source:         Source,
	}

	if err := a.validator.ValidateStruct(deal); err != nil {
		slog.Warn("Skipping deal that failed validation", "name", deal.Name, "error", err)
		return models.Deal{}, false
	}

	return deal, true
}
