package main

// @title Duka Storefront API
// @version 1.0
// @description Storefront service: product catalog, cart, wishlist and shopper accounts with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/duka-storefront
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/duka-storefront/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Product catalog endpoints

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Wishlist
// @tag.description Wishlist endpoints

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description Shopper profile endpoints

// @tag.name Admin
// @tag.description Admin-only catalog management endpoints

// @tag.name Health
// @tag.description Health check endpoints
