package models

// Category identifies one of the recognized menu-item types that can appear
// inside a deal. The set is closed; the classifier never emits anything else.
type Category string

const (
	CategoryLargePizza      Category = "large_pizza"
	CategoryMediumPizza     Category = "medium_pizza"
	CategorySmallPizza      Category = "small_pizza"
	CategoryPizzaRoll       Category = "pizza_roll"
	CategoryLoadedPizzaRoll Category = "loaded_pizza_roll"
	CategoryMeltz           Category = "meltz"
	CategoryWings6Pcs       Category = "wings_6pcs"
	CategoryWings4Pcs       Category = "wings_4pcs"
	CategorySide            Category = "side"
	CategoryDrinkSmall      Category = "drink_small"
	CategoryDrink15L        Category = "drink_1.5l"
	CategoryDessert         Category = "dessert"
)

// SatietyTier is the coarse label derived from a deal's total satiety score.
// The strings are the persisted contract; the frontend renders them verbatim.
type SatietyTier string

const (
	TierHeavy    SatietyTier = "Heavy Meal (Sharing)"
	TierStandard SatietyTier = "Standard Meal"
	TierLight    SatietyTier = "Snack / Light"
)

// RawCandidate is one DOM match pulled off the menu page before any
// classification or filtering. It is discarded after assembly.
type RawCandidate struct {
	Title       string `json:"title"`
	PriceText   string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	AnchorRef   string `json:"href"`
}

// ItemEntry is one recognized menu item inside a deal's breakdown.
// Score is quantity × the category's unit score and is only set when
// satiety scoring is enabled.
type ItemEntry struct {
	Item  Category `json:"item"`
	Qty   int      `json:"qty" validate:"gte=1"`
	Score int      `json:"score,omitempty"`
}

// Deal is the final persisted unit, derived from exactly one RawCandidate.
type Deal struct {
	Name           string      `json:"deal_name" validate:"required"`
	PricePKR       int         `json:"price_pkr" validate:"gt=0"`
	Description    string      `json:"description"`
	SatietyScore   *int        `json:"satiety_score,omitempty"`
	ItemsBreakdown []ItemEntry `json:"items_breakdown"`
	SatietyTier    SatietyTier `json:"satiety_tier,omitempty"`
	ImageURL       string      `json:"image_url,omitempty" validate:"omitempty,url"`
	ProductURL     string      `json:"product_url,omitempty" validate:"omitempty,url"`
	Source         string      `json:"source" validate:"required"`
}
