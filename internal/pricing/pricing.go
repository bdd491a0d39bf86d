package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lookup resolves a coupon code to a percentage discount. Implementations
// must match codes case-insensitively. Kept as an interface so the static
// table can later be swapped for a networked validation call without
// touching the checkout flow.
type Lookup interface {
	Discount(code string) (int, bool)
}

// Table is a static in-memory coupon table keyed by upper-case code.
type Table map[string]int

// Discount implements Lookup.
func (t Table) Discount(code string) (int, bool) {
	percent, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	return percent, ok
}

// DefaultCoupons returns the storefront's built-in promo codes.
func DefaultCoupons() Table {
	return Table{
		"SALE10": 10,
		"SALE20": 20,
		"FIRST":  15,
	}
}

// Quote is the outcome of applying a coupon to a unit price.
type Quote struct {
	Discount int             `json:"discount"`
	Final    decimal.Decimal `json:"final_price"`
}

var hundred = decimal.NewFromInt(100)

// Apply computes final = unit * (1 - discount/100). An unknown code yields
// a zero-discount quote with ok=false: the caller reports the failure but
// checkout stays open with the price unchanged.
func Apply(coupons Lookup, unit decimal.Decimal, code string) (Quote, bool) {
	percent, ok := coupons.Discount(code)
	if !ok {
		return Quote{Discount: 0, Final: unit}, false
	}
	factor := decimal.NewFromInt(int64(100 - percent)).Div(hundred)
	return Quote{Discount: percent, Final: unit.Mul(factor)}, true
}
