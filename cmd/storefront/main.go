package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	carthttp "github.com/tair/duka-storefront/internal/cart/delivery/http"
	cartrepo "github.com/tair/duka-storefront/internal/cart/repository"
	catalogclient "github.com/tair/duka-storefront/internal/catalog/client"
	cataloghttp "github.com/tair/duka-storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/tair/duka-storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/duka-storefront/internal/catalog/repository"
	identityhttp "github.com/tair/duka-storefront/internal/identity/delivery/http"
	identityrepo "github.com/tair/duka-storefront/internal/identity/repository"
	wishlisthttp "github.com/tair/duka-storefront/internal/wishlist/delivery/http"
	wishlistrepo "github.com/tair/duka-storefront/internal/wishlist/repository"

	"github.com/tair/duka-storefront/internal/cart"
	"github.com/tair/duka-storefront/internal/wishlist"
	"github.com/tair/duka-storefront/kafka"
	"github.com/tair/duka-storefront/pkg/database"
	"github.com/tair/duka-storefront/pkg/localstore"
	"github.com/tair/duka-storefront/pkg/logger"
	"github.com/tair/duka-storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "dukadb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Catalog repository: GORM by default, raw SQL over the same pool when
	// CATALOG_DRIVER=sql, remote read API when CATALOG_DRIVER=http
	catalogDriver := getEnv("CATALOG_DRIVER", "gorm")
	var primary catalogdomain.CatalogRepository
	switch catalogDriver {
	case "sql":
		primary = catalogrepo.NewPostgresCatalogRepository(sqlDB)
		logger.Logger.Info().Msg("Catalog repository using raw SQL driver")
	case "http":
		backendURL := getEnv("CATALOG_BACKEND_URL", "http://localhost:5000")
		catalogClient := catalogclient.NewCatalogClient(backendURL)

		healthCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if !catalogClient.Healthy(healthCtx) {
			logger.Logger.Warn().
				Str("backend_url", backendURL).
				Msg("Remote catalog backend is not healthy, reads will degrade to bundled defaults")
		}
		cancel()

		primary = catalogrepo.NewHTTPCatalogRepository(catalogClient)
		logger.Logger.Info().
			Str("backend_url", backendURL).
			Msg("Catalog repository using remote HTTP backend")
	default:
		gormRepo := catalogrepo.NewGormCatalogRepository(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run catalog migrations")
		}
		primary = gormRepo
	}
	catalogRepo := catalogrepo.NewFallbackRepository(primary)

	// Seed the catalog when empty; the remote backend owns its own data
	if catalogDriver != "http" {
		if err := catalogrepo.Seed(primary); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to seed catalog, bundled defaults remain available")
		}
	}

	// Identity repository
	userRepo := identityrepo.NewGormUserRepository(db)
	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run identity migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis holds remote cart and wishlist documents
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()

	// Per-device store holds guest cart and wishlist documents
	deviceStore, err := localstore.New(getEnv("DEVICE_STORE_DIR", "./data/devices"))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open device store")
	}

	// Kafka publisher for catalog events (optional)
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize Kafka publisher, catalog events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, catalog events disabled")
	}

	// Initialize handlers
	catalogHandler := cataloghttp.NewCatalogHandler(catalogRepo, publisher)
	identityHandler := identityhttp.NewIdentityHandler(userRepo)

	cartRegistry := cart.NewRegistry(
		cartrepo.NewRedisStore(redisClient),
		cartrepo.NewLocalStore(deviceStore),
	)
	cartHandler := carthttp.NewCartHandler(cartRegistry, catalogRepo)

	wishlistRegistry := wishlist.NewRegistry(
		wishlistrepo.NewRedisStore(redisClient),
		wishlistrepo.NewLocalStore(deviceStore),
	)
	wishlistHandler := wishlisthttp.NewWishlistHandler(wishlistRegistry, catalogRepo)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	startHTTPServer(httpPort, sqlDB,
		catalogHandler, identityHandler, cartHandler, wishlistHandler)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	port string,
	db *sql.DB,
	catalogHandler *cataloghttp.CatalogHandler,
	identityHandler *identityhttp.IdentityHandler,
	cartHandler *carthttp.CartHandler,
	wishlistHandler *wishlisthttp.WishlistHandler,
) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	catalogHandler.RegisterRoutes(router)
	identityHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)

	// Health check endpoint
	catalogHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	cataloghttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Trace every request
	handler := otelhttp.NewHandler(c.Handler(router), "storefront")

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
