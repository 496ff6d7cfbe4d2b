package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "gamestation-backend/internal/api/http"
	"gamestation-backend/internal/config"
	"gamestation-backend/internal/jobs"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository/postgres"
	"gamestation-backend/internal/scheduler"
	"gamestation-backend/internal/security"
	"gamestation-backend/internal/service"
	"gamestation-backend/internal/utils"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GameStation Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Shared locks: rentals and top-ups contend on the same member lock.
	consoleLocks := utils.NewKeyedMutex()
	memberLocks := utils.NewKeyedMutex()

	// Initialize Services
	pricingSvc, err := service.NewPricingService(context.Background(), store.PricingRepository, cfg.Billing.RateTable())
	if err != nil {
		logger.Error("Failed to initialize pricing", "error", err)
		log.Fatalf("Failed to initialize pricing: %v", err)
	}
	membershipSvc := service.NewMembershipService(store.MemberRepository, store.MembershipTransactionRepository, cfg.Packages, memberLocks)
	rentalSvc := service.NewRentalService(
		store.ConsoleRepository,
		store.MemberRepository,
		store.ProductRepository,
		store.SessionRepository,
		pricingSvc,
		membershipSvc,
		cfg.Billing.QuantumMinutes,
		consoleLocks,
		memberLocks,
	)
	historySvc := service.NewHistoryService(store.SessionRepository, store.MembershipTransactionRepository, store.ExpenseRepository)
	catalogSvc := service.NewCatalogService(store.ProductRepository)
	memberSvc := service.NewMemberService(store.MemberRepository)
	consoleSvc := service.NewConsoleService(store.ConsoleRepository, store.SessionRepository)
	expenseSvc := service.NewExpenseService(store.ExpenseRepository)
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)

	// Initialize HTTP API
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Console: httpapi.NewConsoleHandler(consoleSvc),
		Session: httpapi.NewSessionHandler(rentalSvc, catalogSvc),
		Member:  httpapi.NewMemberHandler(memberSvc, membershipSvc),
		Product: httpapi.NewProductHandler(catalogSvc),
		Pricing: httpapi.NewPricingHandler(pricingSvc),
		History: httpapi.NewHistoryHandler(historySvc),
		Expense: httpapi.NewExpenseHandler(expenseSvc, authSvc),
	}, tokenManager)

	// Start the in-process scheduler alongside the API server.
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{
		Rental:  rentalSvc,
		History: historySvc,
		Members: memberSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
