package jobs

import (
	"context"
	"time"

	"gamestation-backend/internal/logger"
)

// RecomputeOpenSessions refreshes the advisory running totals of every
// active session so dashboards stay current between operator actions.
func (jr *JobRunner) RecomputeOpenSessions() {
	jr.runWithRecovery("RecomputeOpenSessions", func() {
		ctx := context.Background()
		now := time.Now()

		sessions, err := jr.services.Rental.ListActiveSessions(ctx)
		if err != nil {
			logger.Error("Failed to list active sessions", "error", err)
			return
		}

		for _, session := range sessions {
			if _, err := jr.services.Rental.Tick(ctx, session.ID, now); err != nil {
				logger.Error("Failed to recompute session", "session_id", session.ID, "error", err)
			}
		}
		logger.Info("Open sessions recomputed", "count", len(sessions))
	})
}
