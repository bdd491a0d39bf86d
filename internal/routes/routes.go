package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarovs/kross-storefront/internal/handlers"
)

// CORSMiddleware tells the browser that the storefront frontend is allowed
// to call this API.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		// Reply to the browser's preflight check with "204 No Content".
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, allowedOrigin string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(allowedOrigin))

	v1 := router.Group("/v1")
	{
		// --- Ping Route ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Storefront Views ---
		v1.GET("/home", h.GetHome)
		v1.GET("/catalog", h.GetCatalog)
		v1.GET("/products/:id", h.GetProduct)

		// --- Checkout ---
		checkout := v1.Group("/checkout")
		{
			checkout.POST("/sessions", h.StartCheckout)
			checkout.POST("/sessions/:id/coupon", h.ApplyCoupon)
			checkout.POST("/sessions/:id/confirm", h.ConfirmOrder)
		}
	}

	return router
}
