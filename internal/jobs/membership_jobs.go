package jobs

import (
	"context"
	"time"

	"gamestation-backend/internal/logger"
)

// SweepExpiredPackages reports members whose packages have lapsed. Packages
// are never deleted; expiry is enforced at selection time, so the sweep only
// surfaces them for staff follow-up.
func (jr *JobRunner) SweepExpiredPackages() {
	jr.runWithRecovery("SweepExpiredPackages", func() {
		ctx := context.Background()
		now := time.Now()

		members, err := jr.services.Members.ListMembers(ctx)
		if err != nil {
			logger.Error("Failed to list members", "error", err)
			return
		}

		expired := 0
		for _, member := range members {
			for _, pkg := range member.Packages {
				if pkg.Expired(now) && pkg.RemainingMinutes > 0 {
					expired++
					logger.Warn("Package expired with minutes remaining",
						"member_id", member.ID, "package_id", pkg.ID,
						"remaining_minutes", pkg.RemainingMinutes,
						"expired_on", pkg.ExpiryDate)
				}
			}
		}
		logger.Info("Expired package sweep finished", "flagged", expired)
	})
}
