package main

// @title BookHaven Storefront API
// @version 1.0
// @description Bookstore storefront with catalog browsing, cart, simulated checkout and AI recommendations, with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Session
// @tag.description Session lifecycle and view state

// @tag.name Auth
// @tag.description Simulated sign-in endpoints

// @tag.name Catalog
// @tag.description Book browsing, search and samples

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Recommendations
// @tag.description AI librarian endpoints

// @tag.name Checkout
// @tag.description Checkout flow endpoints

// @tag.name Health
// @tag.description Health check endpoints
