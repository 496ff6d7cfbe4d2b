package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"gamestation-backend/internal/config"
	"gamestation-backend/internal/jobs"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository/postgres"
	"gamestation-backend/internal/scheduler"
	"gamestation-backend/internal/service"
	"gamestation-backend/internal/utils"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'recompute-sessions', 'daily-summary', 'sweep-packages', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GameStation Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	consoleLocks := utils.NewKeyedMutex()
	memberLocks := utils.NewKeyedMutex()

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
	memberSvc := service.NewMemberService(store.MemberRepository)

	jobRunner := jobs.NewJobRunner(store, &jobs.Services{
		Rental:  rentalSvc,
		History: historySvc,
		Members: memberSvc,
	}, cfg)

	// One-shot mode for manual runs and debugging.
	if *runOnce != "" {
		switch *runOnce {
		case "recompute-sessions":
			jobRunner.RecomputeOpenSessions()
		case "daily-summary":
			jobRunner.LogDailySummary()
		case "sweep-packages":
			jobRunner.SweepExpiredPackages()
		case "all":
			jobRunner.RunAllJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down...")
	sched.Stop()
}
