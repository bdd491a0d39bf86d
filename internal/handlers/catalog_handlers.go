package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/akbarovs/kross-storefront/internal/catalog"
	"github.com/akbarovs/kross-storefront/internal/i18n"
)

// GetCatalog is the handler for GET /v1/catalog.
//
// Query parameters: category (men|women), filter (new|sale), brand
// (repeatable), size (repeatable), min_price, max_price, sort
// (newest|priceLow|priceHigh). Unknown category/filter/sort values behave
// like "no selection", matching the storefront UI.
func (h *Handlers) GetCatalog(c *gin.Context) {
	t := translator(c)

	// 1. --- Build the facet selection from the query string ---
	query, err := parseCatalogQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Load the full collection (one fetch per view) ---
	products, err := h.Shop.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products. Please try again."})
		return
	}

	// 3. --- Facet options always come from the FULL collection ---
	brands := catalog.Brands(products)
	sizes := catalog.Sizes(products)

	// 4. --- Filter + sort ---
	results := catalog.Filter(products, query)

	c.JSON(http.StatusOK, gin.H{
		"title":    pageTitle(query, t),
		"total":    len(results),
		"products": results,
		"facets": gin.H{
			"brands": brands,
			"sizes":  sizes,
		},
		"sort": query.Sort,
	})
}

// parseCatalogQuery maps the catalog query string onto a facet selection.
// Numeric parameters must parse; everything else passes through and is
// interpreted (or ignored) by the engine.
func parseCatalogQuery(c *gin.Context) (catalog.Query, error) {
	query := catalog.NewQuery()
	query.Category = c.Query("category")
	query.Filter = c.Query("filter")
	query.Brands = c.QueryArray("brand")

	for _, raw := range c.QueryArray("size") {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return query, errBadParam("size", raw)
		}
		query.Sizes = append(query.Sizes, size)
	}

	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errBadParam("min_price", raw)
		}
		query.MinPrice = min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errBadParam("max_price", raw)
		}
		query.MaxPrice = max
	}

	if sort := c.Query("sort"); sort != "" {
		query.Sort = sort
	}
	return query, nil
}

// pageTitle mirrors the storefront's catalog heading: the category or
// special filter wins, otherwise the generic catalog title.
func pageTitle(q catalog.Query, t i18n.Translator) string {
	switch {
	case q.Category == catalog.CategoryMen:
		return t.T("categories.men")
	case q.Category == catalog.CategoryWomen:
		return t.T("categories.women")
	case q.Filter == catalog.FilterNew:
		return t.T("categories.new")
	case q.Filter == catalog.FilterSale:
		return t.T("categories.sale")
	default:
		return t.T("nav.catalog")
	}
}

type badParamError struct {
	param string
	value string
}

func (e badParamError) Error() string {
	return "Invalid value " + strconv.Quote(e.value) + " for parameter " + strconv.Quote(e.param)
}

func errBadParam(param, value string) error {
	return badParamError{param: param, value: value}
}
