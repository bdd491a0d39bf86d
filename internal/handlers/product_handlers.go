package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/akbarovs/kross-storefront/internal/shop"
)

// GetProduct is the handler for GET /v1/products/:id — the detail view:
// the product record, the description in the active locale, the discount
// badge, and ready-made share links.
func (h *Handlers) GetProduct(c *gin.Context) {
	t := translator(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.Shop.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shop.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load product. Please try again."})
		return
	}

	pageURL := fmt.Sprintf("%s/product/%d", h.PublicURL, product.ID)
	shareText := fmt.Sprintf("%s %s - %s %s", product.Brand, product.Name, product.Price, t.T("common.currency"))

	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"description":      product.LocalizedDescription(string(t.Locale())),
		"discount_percent": product.DiscountPercent(),
		"share": gin.H{
			"slug":     slug.Make(product.Brand + " " + product.Name),
			"url":      pageURL,
			"telegram": "https://t.me/share/url?url=" + url.QueryEscape(pageURL) + "&text=" + url.QueryEscape(shareText),
			"whatsapp": "https://wa.me/?text=" + url.QueryEscape(shareText+" "+pageURL),
		},
	})
}
