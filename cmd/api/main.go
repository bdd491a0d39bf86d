package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/akbarovs/kross-storefront/internal/checkout"
	"github.com/akbarovs/kross-storefront/internal/handlers"
	"github.com/akbarovs/kross-storefront/internal/pricing"
	"github.com/akbarovs/kross-storefront/internal/routes"
	"github.com/akbarovs/kross-storefront/internal/shop"
)

// envOr reads an environment variable with a development fallback.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Upstream Product/Order API Client ---
	upstreamURL := envOr("UPSTREAM_API_URL", "http://localhost:8000/api")
	shopClient := shop.NewClient(upstreamURL)
	log.Printf("Using upstream product API at %s", upstreamURL)

	// 2. --- Application Setup ---
	// We inject ALL dependencies (upstream client, coupon table, session
	// store) into the Handlers struct.
	app := &handlers.Handlers{
		Shop:      shopClient,
		Coupons:   pricing.DefaultCoupons(),
		Sessions:  checkout.NewStore(),
		PublicURL: envOr("STOREFRONT_PUBLIC_URL", "http://localhost:5173"),
	}

	// --- Router Setup ---
	frontendOrigin := envOr("FRONTEND_ORIGIN", "http://localhost:5173")
	router := routes.SetupRouter(app, frontendOrigin)

	// --- Start Server ---
	port := envOr("PORT", "8080")
	log.Printf("Starting storefront API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
