package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ShopSphere/pkg/kit"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// DefaultMaxPriceCents is the upper bound of the storefront price slider.
const DefaultMaxPriceCents int64 = 100000

// Criteria selects and orders the products shown to the shopper.
type Criteria struct {
	Category      Category `json:"category" validate:"omitempty,oneof=all electronics clothing accessories home food"`
	Query         string   `json:"query" validate:"max=200"`
	MinPriceCents int64    `json:"min_price_cents" validate:"gte=0"`
	MaxPriceCents int64    `json:"max_price_cents" validate:"gtefield=MinPriceCents"`
	Sort          SortKey  `json:"sort" validate:"omitempty,oneof=featured price-low price-high rating name"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		Category:      CategoryAll,
		MinPriceCents: 0,
		MaxPriceCents: DefaultMaxPriceCents,
		Sort:          SortFeatured,
	}
}

func (c Criteria) Validate() error {
	return kit.Validate(c)
}

func (c Criteria) matches(p Product, query string) bool {
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
		return false
	}
	return p.PriceCents >= c.MinPriceCents && p.PriceCents <= c.MaxPriceCents
}

// Derive filters products by c and orders them by c.Sort. The input slice is
// not modified. Sorting is stable, so ties keep catalog order, and unknown
// sort keys leave catalog order untouched.
func Derive(products []Product, c Criteria) []Product {
	query := strings.ToLower(c.Query)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.matches(p, query) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.PriceCents, b.PriceCents) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.PriceCents, a.PriceCents) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Product) int { return col.CompareString(a.Name, b.Name) })
	}

	return out
}

type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Categories lists the browsable categories in display order, "all" first.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryAll, Name: "All Products"},
		{ID: CategoryElectronics, Name: "Electronics"},
		{ID: CategoryClothing, Name: "Clothing"},
		{ID: CategoryAccessories, Name: "Accessories"},
		{ID: CategoryHome, Name: "Home & Living"},
		{ID: CategoryFood, Name: "Food & Drinks"},
	}
}
