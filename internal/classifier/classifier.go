// Package classifier maps free-text deal titles and descriptions onto the
// fixed catalog of menu-item categories, with optional satiety scoring.
package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/khizerinam08/deal-checker/internal/models"
)

// Config carries the scoring table and tier thresholds. It is passed in at
// construction so tests can run against alternate tables; the rule set and
// precedence are fixed regardless of configuration.
type Config struct {
	// ScoringEnabled toggles satiety scoring and tiering. The same rules and
	// precedence apply in both modes; only the wings rule branches on it.
	ScoringEnabled bool

	// Scores maps each category to its unit satiety score (fuel units).
	Scores map[models.Category]int

	// Tier thresholds on the total score.
	HeavyThreshold    int
	StandardThreshold int
}

// DefaultConfig returns the calibrated production scoring table.
func DefaultConfig(scoringEnabled bool) Config {
	return Config{
		ScoringEnabled: scoringEnabled,
		Scores: map[models.Category]int{
			models.CategoryLargePizza:      40,
			models.CategoryMediumPizza:     25,
			models.CategorySmallPizza:      15,
			models.CategoryMeltz:           12,
			models.CategoryPizzaRoll:       12,
			models.CategoryLoadedPizzaRoll: 12,
			models.CategorySide:            8,
			models.CategoryWings6Pcs:       12,
			models.CategoryWings4Pcs:       8,
			models.CategoryDessert:         5,
			models.CategoryDrinkSmall:      2,
			models.CategoryDrink15L:        4,
		},
		HeavyThreshold:    30,
		StandardThreshold: 15,
	}
}

// Result is the classification outcome for one deal text. TotalScore and
// Tier are only set when scoring is enabled.
type Result struct {
	Items      []models.ItemEntry
	TotalScore *int
	Tier       models.SatietyTier
}

var (
	largePizzaRe  = regexp.MustCompile(`(\d+)?\s*large\s*(?:classic\s*)?pizza`)
	mediumPizzaRe = regexp.MustCompile(`(\d+)?\s*medium\s*(?:classic\s*)?pizza`)
	smallPizzaRe  = regexp.MustCompile(`(\d+)?\s*small\s*pizza`)
	pizzaRollRe   = regexp.MustCompile(`(\d+)?\s*(?:loaded\s*)?pizza\s*roll`)
	wingsRe       = regexp.MustCompile(`(\d+)\s*(?:pcs?\s*)?wings`)
	sideRe        = regexp.MustCompile(`(\d+)?\s*side`)
	drinkRe       = regexp.MustCompile(`(\d+)?\s*(?:small\s*)?drink`)
)

// countedRules are the categories where every non-overlapping match in the
// text contributes its own entry, with an optional leading quantity.
var countedRules = []struct {
	re       *regexp.Regexp
	category models.Category
}{
	{largePizzaRe, models.CategoryLargePizza},
	{mediumPizzaRe, models.CategoryMediumPizza},
	{smallPizzaRe, models.CategorySmallPizza},
}

type Classifier struct {
	cfg Config
}

func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify matches title+description against the category rules in their
// fixed order. Categories are independent of each other except for the two
// exclusive families: loaded pizza roll suppresses plain pizza roll, and a
// 1.5L drink suppresses the generic drink rule.
func (c *Classifier) Classify(title, description string) Result {
	text := strings.ToLower(title + " " + description)

	var items []models.ItemEntry
	add := func(category models.Category, qty int) {
		entry := models.ItemEntry{Item: category, Qty: qty}
		if c.cfg.ScoringEnabled {
			entry.Score = qty * c.cfg.Scores[category]
		}
		items = append(items, entry)
	}

	// Pizza sizes: a text may match several size rules at once
	// ("1 Large + 1 Small Pizza" yields two entries).
	for _, rule := range countedRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			add(rule.category, quantityOrOne(m[1]))
		}
	}

	// Pizza-roll family: the loaded variant wins over the plain one,
	// never both for the same text.
	if strings.Contains(text, "loaded pizza roll") {
		add(models.CategoryLoadedPizzaRoll, firstQuantity(pizzaRollRe, text))
	} else if strings.Contains(text, "pizza roll") {
		add(models.CategoryPizzaRoll, firstQuantity(pizzaRollRe, text))
	}

	// Meltz: presence only, at most one entry.
	if strings.Contains(text, "meltz") {
		add(models.CategoryMeltz, 1)
	}

	if m := wingsRe.FindStringSubmatch(text); m != nil {
		c.addWings(quantityOrOne(m[1]), add)
	}

	for _, m := range sideRe.FindAllStringSubmatch(text, -1) {
		add(models.CategorySide, quantityOrOne(m[1]))
	}

	// Drink family: a 1.5L bottle suppresses the generic drink rule.
	if strings.Contains(text, "1.5") && (strings.Contains(text, "ltr") || strings.Contains(text, "liter")) {
		add(models.CategoryDrink15L, 1)
	} else if strings.Contains(text, "drink") {
		add(models.CategoryDrinkSmall, firstQuantity(drinkRe, text))
	}

	// Dessert: "cake" alone is enough. Known over-match, kept on purpose.
	if strings.Contains(text, "lava cake") || strings.Contains(text, "cake") || strings.Contains(text, "dessert") {
		add(models.CategoryDessert, 1)
	}

	result := Result{Items: items}
	if c.cfg.ScoringEnabled {
		total := 0
		for _, it := range items {
			total += it.Score
		}
		result.TotalScore = &total
		result.Tier = c.tier(total)
	}
	return result
}

// addWings handles the one category with a numeric threshold branch. The two
// modes intentionally disagree below six pieces: scoring mode emits a 4pcs
// entry so the smaller pack gets its own score, quantity-only mode forces a
// minimum of one 6pcs entry.
func (c *Classifier) addWings(count int, add func(models.Category, int)) {
	if c.cfg.ScoringEnabled {
		if count >= 6 {
			add(models.CategoryWings6Pcs, count/6)
		} else {
			add(models.CategoryWings4Pcs, 1)
		}
		return
	}
	add(models.CategoryWings6Pcs, max(1, count/6))
}

func (c *Classifier) tier(total int) models.SatietyTier {
	switch {
	case total >= c.cfg.HeavyThreshold:
		return models.TierHeavy
	case total >= c.cfg.StandardThreshold:
		return models.TierStandard
	default:
		return models.TierLight
	}
}

// quantityOrOne parses an optional captured quantity group, defaulting to 1.
func quantityOrOne(capture string) int {
	n, err := strconv.Atoi(capture)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// firstQuantity returns the quantity captured by the first match of re in
// text, or 1 when the numeric prefix is absent.
func firstQuantity(re *regexp.Regexp, text string) int {
	if m := re.FindStringSubmatch(text); m != nil {
		return quantityOrOne(m[1])
	}
	return 1
}
