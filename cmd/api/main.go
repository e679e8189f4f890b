package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	authUseCase "github.com/dampdigits/stockplay/internal/domain/usecase/auth"
	ledgerUseCase "github.com/dampdigits/stockplay/internal/domain/usecase/ledger"

	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/handler"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/routes"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/database"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/logger"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/market"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/repository"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/security"
	sessionStore "github.com/dampdigits/stockplay/internal/infrastructure/adapter/session"
	timeProvider "github.com/dampdigits/stockplay/internal/infrastructure/adapter/time"
	"github.com/dampdigits/stockplay/internal/infrastructure/config"

	marketport "github.com/dampdigits/stockplay/internal/domain/port/market"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to redis for sessions and the quote cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		appLogger.Error("Failed to connect to redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer redisClient.Close()

	// Initialize repositories and the unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	holdingRepo := repository.NewHoldingRepository(dbManager.DB(), tp, appLogger)
	historyRepo := repository.NewHistoryRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Quote provider, optionally wrapped with a redis cache
	var quotes marketport.QuoteProvider = market.NewAlphaVantageProvider(
		cfg.Quote.APIKey,
		cfg.Quote.BaseURL,
		cfg.Quote.Timeout,
		appLogger,
	)
	if cfg.Quote.CacheEnabled {
		quotes = market.NewCachedQuoteProvider(quotes, redisClient, cfg.Quote.CacheTTL, appLogger)
	}

	// Session store and password hasher
	sessions := sessionStore.NewRedisStore(redisClient, cfg.Session.TTL, appLogger)
	hasher := security.NewBcryptHasher(cfg.Account.BcryptCost)

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, sessions, hasher, tp, appLogger, cfg.Account.StartingCashCents)
	ledgerService := ledgerUseCase.NewService(uow, userRepo, holdingRepo, historyRepo, quotes, tp, appLogger)

	// Initialize handlers
	cookieSettings := handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	}
	authHandler := handler.NewAuthHandler(authService, cookieSettings, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)
	quoteHandler := handler.NewQuoteHandler(quotes, appLogger)

	// Initialize Gin router with server-rendered templates
	router := gin.New()
	router.LoadHTMLGlob("web/templates/*.html")

	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, ledgerHandler, quoteHandler, sessions, cfg.Session.CookieName, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
