package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/minhtran-dev/sales-insights/pkg/validator"

	"github.com/minhtran-dev/sales-insights/internal/adapter/handler"
	"github.com/minhtran-dev/sales-insights/internal/adapter/repository"
	"github.com/minhtran-dev/sales-insights/internal/infrastructure/cache"
	"github.com/minhtran-dev/sales-insights/internal/infrastructure/database"
	"github.com/minhtran-dev/sales-insights/internal/infrastructure/storage"
	"github.com/minhtran-dev/sales-insights/internal/usecase/analytics"
	"github.com/minhtran-dev/sales-insights/internal/usecase/clients"
	"github.com/minhtran-dev/sales-insights/internal/usecase/insights"
	pkgai "github.com/minhtran-dev/sales-insights/pkg/ai"
	"github.com/minhtran-dev/sales-insights/pkg/config"
)

// @title           Sales Insights API
// @version         1.0
// @description     Analytics backend over client-meeting records: CSV ingestion, AI categorization, conversion analytics and narrative insights

// @contact.name   API Support
// @contact.email  minhtran.dev@gmail.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize insight cache (Redis, or in-process when disabled)
	var insightCache insights.Cache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		insightCache = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-process insight cache")
		insightCache = cache.NewMemoryStore()
	}

	// Initialize object storage for CSV archiving
	var minioClient *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	} else {
		log.Println("🗄️  Object storage disabled, CSV uploads will not be archived")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	clientRepo := repository.NewClientRepository(db)

	// Initialize AI client
	log.Println("🤖 Initializing Groq client...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize services
	log.Println("📊 Initializing analytics service...")
	analyticsService := analytics.NewService(clientRepo, logger)

	log.Println("💡 Initializing insights service...")
	insightsService := insights.NewService(
		analyticsService,
		clientRepo,
		groqClient,
		insightCache,
		cfg.Redis.InsightTTL,
		logger,
	)

	log.Println("👥 Initializing clients service...")
	var archiver clients.Archiver
	if minioClient != nil {
		archiver = minioClient
	}
	clientsService := clients.NewService(clientRepo, groqClient, archiver, insightsService, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)
	insightsHandler := handler.NewInsightsHandler(insightsService, logger)
	var archiveLister handler.ArchiveLister
	if minioClient != nil {
		archiveLister = minioClient
	}
	clientsHandler := handler.NewClientsHandler(clientsService, archiveLister, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analyticsHandler, insightsHandler, clientsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
