package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financehub/internal/config"
	"financehub/internal/database"
	"financehub/internal/handlers"
	custommiddleware "financehub/internal/middleware"
	"financehub/internal/repositories"
	"financehub/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		logger.Error("failed to access sql.DB", "error", err)
		os.Exit(1)
	}
	migrator := database.NewMigrationRunner(sqlDB)
	if err := migrator.WaitForDatabase(); err != nil {
		logger.Error("database never became ready", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(); err != nil {
		logger.Error("automigrate failed", "error", err)
		os.Exit(1)
	}
	if err := db.CreateIndexes(); err != nil {
		logger.Warn("index creation failed", "error", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	savingsRepo := repositories.NewSavingsRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, profileRepo, categoryRepo, passwordService, tokenService, metrics, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, profileRepo, logger)
	quickExpenseService := services.NewQuickExpenseService(transactionRepo, categoryRepo, profileRepo, metrics, logger)
	dashboardService := services.NewDashboardService(transactionRepo, profileRepo, savingsRepo, logger)
	reportService := services.NewReportService(transactionRepo, savingsRepo, budgetRepo, logger)
	budgetService := services.NewBudgetService(budgetRepo, profileRepo, metrics, logger)
	savingsService := services.NewSavingsService(savingsRepo, categoryRepo, logger)
	exportService := services.NewExportService(metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, exportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, quickExpenseService, transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.Logger())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("", custommiddleware.RequireAuth(tokenService))
	protected.GET("/me", authHandler.Me)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.POST("/dashboard/quick-expense", dashboardHandler.QuickExpense)
	protected.POST("/dashboard/add-cash", dashboardHandler.AddCash)

	protected.GET("/transactions", transactionHandler.List)
	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions/export", transactionHandler.Export)

	protected.POST("/savings", savingsHandler.Create)

	protected.GET("/reports/weekly", reportHandler.Weekly)
	protected.GET("/reports/monthly", reportHandler.Monthly)

	protected.POST("/budgets/weekly", budgetHandler.CreateWeekly)
	protected.POST("/budgets/monthly", budgetHandler.CreateMonthly)
	protected.PUT("/budgets/:id", budgetHandler.UpdateAmount)
	protected.DELETE("/budgets/:id", budgetHandler.Close)

	// Graceful shutdown
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}
