package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/akbarovs/kross-storefront/internal/checkout"
	"github.com/akbarovs/kross-storefront/internal/i18n"
	"github.com/akbarovs/kross-storefront/internal/pricing"
	"github.com/akbarovs/kross-storefront/internal/shop"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Shop      *shop.Client    // upstream product/order API
	Coupons   pricing.Lookup  // coupon table (swappable for a remote check)
	Sessions  *checkout.Store // live checkout view state
	PublicURL string          // storefront origin, used for share links
}

// translator resolves the request locale. An explicit ?lang= parameter wins
// over the Accept-Language header; the default is Uzbek.
func translator(c *gin.Context) i18n.Translator {
	locale := i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))
	return i18n.NewTranslator(locale)
}
