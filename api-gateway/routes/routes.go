package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tair/duka-storefront/api-gateway/config"
	"github.com/tair/duka-storefront/api-gateway/middleware"
	"github.com/tair/duka-storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	RequireAdmin bool // Requires admin role
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:       "/auth",
		ServiceName:  "storefront",
		Description:  "Authentication endpoints (signup, login, logout)",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/health",
		ServiceName:  "storefront",
		Description:  "Health check endpoint",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/products",
		ServiceName:  "storefront",
		Description:  "Product catalog browsing",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/categories",
		ServiceName:  "storefront",
		Description:  "Category listing",
		RequireAuth:  false,
		RequireAdmin: false,
	},

	// Cart and wishlist accept guest sessions via X-Device-ID, so the
	// gateway only attaches claims when a token is present
	{
		Prefix:       "/cart",
		ServiceName:  "storefront",
		Description:  "Shopping cart (guest or authenticated)",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/wishlist",
		ServiceName:  "storefront",
		Description:  "Wishlist (guest or authenticated)",
		RequireAuth:  false,
		RequireAdmin: false,
	},

	// Shopper profile routes
	{
		Prefix:       "/users",
		ServiceName:  "storefront",
		Description:  "Shopper profile management",
		RequireAuth:  true,
		RequireAdmin: false,
	},

	// Admin catalog management
	{
		Prefix:       "/admin",
		ServiceName:  "storefront",
		Description:  "Catalog management (admin only)",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Duka API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	// Create handler function
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	if route.RequireAdmin {
		// Admin routes need both auth and admin check
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		// Auth required routes
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else {
		// Public routes still attach claims when a token is present so
		// the backend can resolve the shopper session
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, append(middlewares, handler)...)
}
