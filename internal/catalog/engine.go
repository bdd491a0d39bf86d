package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Sort keys accepted by the catalog view. SortNewest relies on the upstream
// returning products newest-first, so it is a pass-through of input order.
const (
	SortNewest    = "newest"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
)

// Special filter values ("filter" query parameter).
const (
	FilterNew  = "new"
	FilterSale = "sale"
)

// Default price bounds. These mirror the widest range the storefront UI
// offers, so an untouched price slider keeps every product visible.
var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(5000000)
)

// Query is the facet selection of one catalog view: which category tab is
// active, which special filter, which brands and sizes are checked, the
// price range, and the sort order. Empty brand/size sets mean "no
// restriction", never "exclude everything".
//
// Always build a Query through NewQuery: the price-range stage runs even
// when the user never touched the slider, so the bounds must be seeded.
type Query struct {
	Category string
	Filter   string
	Brands   []string
	Sizes    []int
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     string
}

// NewQuery returns a blank selection: no facets, default price bounds,
// newest-first order.
func NewQuery() Query {
	return Query{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Sort:     SortNewest,
	}
}

// Filter runs the facet pipeline over the full product collection and
// returns the display set. Stages apply in a fixed order: category,
// special filter, brand, size, price range, sort. The result is always a
// subset of the input; no entry is fabricated or duplicated, and the input
// slice is left untouched.
func Filter(products []Product, q Query) []Product {
	result := make([]Product, 0, len(products))
	result = append(result, products...)

	result = filterCategory(result, q.Category)
	result = filterSpecial(result, q.Filter)
	result = filterBrands(result, q.Brands)
	result = filterSizes(result, q.Sizes)
	result = filterPrice(result, q.MinPrice, q.MaxPrice)

	return sortProducts(result, q.Sort)
}

// Brands derives the brand facet options from the FULL collection,
// de-duplicated in first-seen order. It must never be fed the filtered
// subset: checking one facet must not hide the options of another.
func Brands(products []Product) []string {
	seen := make(map[string]bool, len(products))
	brands := make([]string, 0, len(products))
	for _, p := range products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}

// Sizes derives the size facet options from the FULL collection, distinct
// and in ascending numeric order.
func Sizes(products []Product) []int {
	seen := make(map[int]bool)
	sizes := make([]int, 0)
	for _, p := range products {
		for _, s := range p.Sizes {
			if !seen[s.Size] {
				seen[s.Size] = true
				sizes = append(sizes, s.Size)
			}
		}
	}
	sort.Ints(sizes)
	return sizes
}

// filterCategory keeps men+unisex for "men", women+unisex for "women",
// everything otherwise.
func filterCategory(products []Product, category string) []Product {
	switch category {
	case CategoryMen:
		return keep(products, func(p Product) bool {
			return p.Category == CategoryMen || p.Category == CategoryUnisex
		})
	case CategoryWomen:
		return keep(products, func(p Product) bool {
			return p.Category == CategoryWomen || p.Category == CategoryUnisex
		})
	default:
		return products
	}
}

func filterSpecial(products []Product, filter string) []Product {
	switch filter {
	case FilterNew:
		return keep(products, func(p Product) bool { return p.IsNew })
	case FilterSale:
		return keep(products, func(p Product) bool { return p.IsSale })
	default:
		return products
	}
}

func filterBrands(products []Product, brands []string) []Product {
	if len(brands) == 0 {
		return products
	}
	selected := make(map[string]bool, len(brands))
	for _, b := range brands {
		selected[b] = true
	}
	return keep(products, func(p Product) bool { return selected[p.Brand] })
}

func filterSizes(products []Product, sizes []int) []Product {
	if len(sizes) == 0 {
		return products
	}
	selected := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		selected[s] = true
	}
	return keep(products, func(p Product) bool {
		for _, s := range p.Sizes {
			if selected[s.Size] {
				return true
			}
		}
		return false
	})
}

// filterPrice keeps products whose price falls within [min, max] inclusive.
// This stage always runs; an inverted range simply yields an empty set.
func filterPrice(products []Product, min, max decimal.Decimal) []Product {
	return keep(products, func(p Product) bool {
		return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
	})
}

// sortProducts applies the sort stage. Sorting is stable so products with
// equal prices keep their input order.
func sortProducts(products []Product, key string) []Product {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	}
	// SortNewest (and anything unknown) keeps the upstream order.
	return products
}

func keep(products []Product, match func(Product) bool) []Product {
	kept := products[:0]
	for _, p := range products {
		if match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
