package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"gamestation-backend/internal/jobs"
	"gamestation-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Shop schedules are expressed in local wall-clock time with seconds
	// precision.
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.RecomputeOpenSessions, s.jobs.RecomputeOpenSessions)
	if err != nil {
		logger.Error("Failed to register RecomputeOpenSessions job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.LogDailySummary, s.jobs.LogDailySummary)
	if err != nil {
		logger.Error("Failed to register LogDailySummary job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SweepExpiredPackages, s.jobs.SweepExpiredPackages)
	if err != nil {
		logger.Error("Failed to register SweepExpiredPackages job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
