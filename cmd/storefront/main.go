package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/bookhaven/storefront/docs"
	carthttp "github.com/bookhaven/storefront/internal/cart/delivery/http"
	cataloghttp "github.com/bookhaven/storefront/internal/catalog/delivery/http"
	catalogrepo "github.com/bookhaven/storefront/internal/catalog/repository"
	"github.com/bookhaven/storefront/internal/catalog/seed"
	checkouthttp "github.com/bookhaven/storefront/internal/checkout/delivery/http"
	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	checkoutcommand "github.com/bookhaven/storefront/internal/checkout/usecase/command"
	checkoutquery "github.com/bookhaven/storefront/internal/checkout/usecase/query"
	recommendhttp "github.com/bookhaven/storefront/internal/recommend/delivery/http"
	"github.com/bookhaven/storefront/internal/recommend/gemini"
	recommendcommand "github.com/bookhaven/storefront/internal/recommend/usecase/command"
	sessionhttp "github.com/bookhaven/storefront/internal/session/delivery/http"
	sessionrepo "github.com/bookhaven/storefront/internal/session/repository"
	sessioncommand "github.com/bookhaven/storefront/internal/session/usecase/command"
	sessionquery "github.com/bookhaven/storefront/internal/session/usecase/query"
	"github.com/bookhaven/storefront/pkg/logger"
	"github.com/bookhaven/storefront/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Seed the catalog. The seed is fixed so the storefront shows the
	// same hundred books on every start.
	catalogSeed, err := strconv.ParseInt(getEnv("CATALOG_SEED", "42"), 10, 64)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Invalid CATALOG_SEED")
	}

	books := catalogrepo.NewMemoryBookRepositoryWithTracing()
	if err := books.Seed(seed.Books(catalogSeed)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	count, _ := books.Count()
	logger.Logger.Info().Int("books", count).Msg("Catalog seeded")

	sessions := sessionrepo.NewMemorySessionRepository()
	scheduler := checkoutdomain.NewScheduler()

	// Gemini recommendation source. Without a key every request degrades
	// to an empty result, which the storefront tolerates.
	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		logger.Logger.Warn().Msg("GEMINI_API_KEY not set, recommendations will be empty")
	}
	source := gemini.New(apiKey, getEnv("GEMINI_MODEL", gemini.DefaultModel))

	// Manual DI
	sessionHandler := sessionhttp.NewSessionHandlerWithDI(
		sessioncommand.NewOpenSessionHandler(sessions, scheduler),
		sessioncommand.NewLoginUserHandler(sessions),
		sessioncommand.NewLogoutUserHandler(sessions),
		sessioncommand.NewUpdateViewHandler(sessions),
		sessionquery.NewGetSessionHandler(sessions),
		sessions,
	)

	catalogHandler := cataloghttp.NewCatalogHandler(books, sessions)
	cartHandler := carthttp.NewCartHandler(sessions, books)

	recommendHandler := recommendhttp.NewRecommendHandlerWithDI(
		recommendcommand.NewRecommendBooksHandler(sessions, books, source),
		recommendcommand.NewClearRecommendationsHandler(sessions),
	)

	checkoutHandler := checkouthttp.NewCheckoutHandlerWithDI(
		checkoutcommand.NewOpenCheckoutHandler(sessions),
		checkoutcommand.NewBuyNowHandler(sessions, books),
		checkoutcommand.NewSubmitContactHandler(sessions),
		checkoutcommand.NewBackToReviewHandler(sessions),
		checkoutcommand.NewSubmitPaymentHandler(sessions),
		checkoutcommand.NewDismissCheckoutHandler(sessions),
		checkoutquery.NewGetCheckoutHandler(sessions),
	)

	// Setup router
	router := mux.NewRouter()
	sessionHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	recommendHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)

	// Swagger UI
	sessionhttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: sessionhttp.TracingMiddleware("storefront", c.Handler(router)),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
