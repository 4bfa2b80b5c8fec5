package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"budget-backend/internal/config"
	"budget-backend/internal/database"
	"budget-backend/internal/handlers"
	appmiddleware "budget-backend/internal/middleware"
	"budget-backend/internal/repositories"
	"budget-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)

	// Services
	passwordService := services.NewPasswordService(cfg)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		logger,
	)
	dashboardService := services.NewDashboardService(transactionRepo, budgetRepo, logger)

	seedDemoData(cfg, userRepo, categoryRepo, transactionRepo, budgetRepo, passwordService, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, categoryRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.HTTPMetrics())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	registerRoutes(e, authHandler, categoryHandler, transactionHandler, budgetHandler, dashboardHandler, healthHandler, tokenService, blacklistedTokenRepo)

	// Background cleanup of expired tokens
	stopCleanup := startTokenCleanup(refreshTokenRepo, blacklistedTokenRepo, logger)
	defer close(stopCleanup)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	transactionHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthCheckHandler,
	tokenService services.TokenServiceInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
) {
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	protected := api.Group("", appmiddleware.RequireAuth(tokenService, blacklistedTokenRepo))

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.PATCH("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.PATCH("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.GET("/current_month", budgetHandler.CurrentMonth)
	budgets.GET("/:id", budgetHandler.Get)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.PATCH("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	protected.GET("/dashboard", dashboardHandler.Summary)
}

// seedDemoData populates a demo account when SEED_DEMO_DATA=true.
// Only intended for development environments.
func seedDemoData(
	cfg *config.Config,
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	passwordService services.PasswordServiceInterface,
	logger *slog.Logger,
) {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return
	}
	if cfg.Server.Environment == "production" {
		logger.Warn("SEED_DEMO_DATA ignored in production")
		return
	}

	months := 6
	if raw := os.Getenv("SEED_DEMO_MONTHS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			months = parsed
		}
	}

	sampleData := services.NewSampleDataService(
		userRepo, categoryRepo, transactionRepo, budgetRepo, passwordService, logger)
	if _, err := sampleData.SeedDemoUser("demo", "demo-password", months); err != nil {
		logger.Error("failed to seed demo data", "error", err)
	}
}

// startTokenCleanup periodically removes expired refresh and blacklisted
// tokens. Returns a channel that stops the loop when closed.
func startTokenCleanup(
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	logger *slog.Logger,
) chan struct{} {
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := refreshTokenRepo.DeleteExpired(); err != nil {
					logger.Warn("refresh token cleanup failed", "error", err)
				} else if n > 0 {
					logger.Info("removed expired refresh tokens", "count", n)
				}
				if n, err := blacklistedTokenRepo.DeleteExpired(); err != nil {
					logger.Warn("blacklisted token cleanup failed", "error", err)
				} else if n > 0 {
					logger.Info("removed expired blacklisted tokens", "count", n)
				}
			case <-stop:
				return
			}
		}
	}()

	return stop
}
