package catalog

import (
	"context"
	"errors"
	"math"
)

type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryHome        Category = "home"
	CategoryFood        Category = "food"
)

var ErrNotFound = errors.New("product not found")

// Product is an immutable catalog record. Collections hold value copies, so
// later catalog changes never reach items already added to a cart.
type Product struct {
	ID                 string   `json:"id" yaml:"id" validate:"required"`
	Name               string   `json:"name" yaml:"name"`
	PriceCents         int64    `json:"price_cents" yaml:"price_cents"`
	OriginalPriceCents int64    `json:"original_price_cents" yaml:"original_price_cents"`
	Category           Category `json:"category" yaml:"category"`
	Image              string   `json:"image,omitempty" yaml:"image"`
	Rating             float64  `json:"rating" yaml:"rating"`
	Reviews            int      `json:"reviews" yaml:"reviews"`
	InStock            int      `json:"in_stock" yaml:"in_stock"`
	Features           []string `json:"features" yaml:"features"`
}

func (p Product) Available() bool { return p.InStock > 0 }

// DiscountPercent is the rounded markdown against OriginalPriceCents. It is
// negative when the price exceeds the original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPriceCents == 0 {
		return 0
	}
	d := float64(p.OriginalPriceCents-p.PriceCents) / float64(p.OriginalPriceCents) * 100
	return int(math.Floor(d + 0.5))
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	if p.Features != nil {
		p.Features = append([]string(nil), p.Features...)
	}
	return p
}

type Store interface {
	Ping(ctx context.Context) error
	// List returns every product in catalog order.
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
}
