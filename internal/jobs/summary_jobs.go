package jobs

import (
	"context"
	"time"

	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/service"
)

// LogDailySummary writes the end-of-day totals to the log so operators get
// a nightly snapshot without opening the dashboard.
func (jr *JobRunner) LogDailySummary() {
	jr.runWithRecovery("LogDailySummary", func() {
		summary, err := jr.services.History.Summarize(context.Background(), service.HistoryWindowDaily, time.Now())
		if err != nil {
			logger.Error("Failed to build daily summary", "error", err)
			return
		}

		logger.Info("Daily summary",
			"rental_income", summary.RentalIncome,
			"membership_income", summary.MembershipIncome,
			"total_income", summary.TotalIncome,
			"total_expense", summary.TotalExpense,
			"net_profit", summary.NetProfit)
	})
}
