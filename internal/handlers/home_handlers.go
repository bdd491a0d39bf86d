package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarovs/kross-storefront/internal/catalog"
)

// featuredCount is how many products the home page highlights.
const featuredCount = 4

// GetHome is the handler for GET /v1/home. It composes the landing view:
// hero copy, four featured products, the new-arrivals strip, category
// tiles, and the "why us" blurbs, all in the active locale.
func (h *Handlers) GetHome(c *gin.Context) {
	t := translator(c)

	products, err := h.Shop.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products. Please try again."})
		return
	}

	featured := products
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}

	newQuery := catalog.NewQuery()
	newQuery.Filter = catalog.FilterNew
	newArrivals := catalog.Filter(products, newQuery)

	c.JSON(http.StatusOK, gin.H{
		"hero": gin.H{
			"title":    t.T("hero.title"),
			"subtitle": t.T("hero.subtitle"),
			"cta":      t.T("hero.cta"),
		},
		"featured":     featured,
		"new_arrivals": newArrivals,
		"categories": []gin.H{
			{"key": "men", "title": t.T("categories.men"), "path": "/catalog?category=men"},
			{"key": "women", "title": t.T("categories.women"), "path": "/catalog?category=women"},
			{"key": "new", "title": t.T("categories.new"), "path": "/catalog?filter=new"},
			{"key": "sale", "title": t.T("categories.sale"), "path": "/catalog?filter=sale"},
		},
		"why": []gin.H{
			{"title": t.T("why.original"), "description": t.T("why.originalDesc")},
			{"title": t.T("why.delivery"), "description": t.T("why.deliveryDesc")},
			{"title": t.T("why.easy"), "description": t.T("why.easyDesc")},
		},
	})
}
