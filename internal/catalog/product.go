package catalog

import (
	"github.com/shopspring/decimal"
)

// Product categories as the upstream API serves them.
const (
	CategoryMen    = "men"
	CategoryWomen  = "women"
	CategoryUnisex = "unisex"
)

// Description holds the localized product copy exactly as the API ships it.
type Description struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
}

// Image is one gallery entry from the upstream 'images' array.
type Image struct {
	ImageURL string `json:"image_url"`
}

// Size is one available size from the upstream 'sizes' array.
type Size struct {
	Size int `json:"size"`
}

// Product is a single catalog entry. Price fields are decimals because the
// upstream API is inconsistent about sending them as JSON numbers or numeric
// strings; decimal.Decimal accepts both, so every comparison downstream works
// on one canonical representation.
//
// Products are never mutated after they are fetched.
type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         string           `json:"image"`
	Images        []Image          `json:"images"`
	Sizes         []Size           `json:"sizes"`
	Category      string           `json:"category"`
	IsNew         bool             `json:"is_new"`
	IsSale        bool             `json:"is_sale"`
	Description   Description      `json:"description"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s.Size == size {
			return true
		}
	}
	return false
}

// LocalizedDescription picks the description text for a locale code
// ("ru" or anything else, which falls back to uz).
func (p Product) LocalizedDescription(locale string) string {
	if locale == "ru" {
		return p.Description.Ru
	}
	return p.Description.Uz
}

var hundred = decimal.NewFromInt(100)

// DiscountPercent is the strike-through discount shown on cards and detail
// pages: round(100 * (1 - price/original_price)), half away from zero.
// It is zero when no original price is present, when the original price is
// not positive, or when the data would produce a negative discount.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || !p.OriginalPrice.IsPositive() {
		return 0
	}
	pct := decimal.NewFromInt(1).Sub(p.Price.Div(*p.OriginalPrice)).Mul(hundred)
	n := pct.Round(0).IntPart()
	if n < 0 {
		return 0
	}
	return int(n)
}
