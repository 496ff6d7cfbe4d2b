package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type historyService struct {
	sessionRepo repository.SessionRepository
	txRepo      repository.MembershipTransactionRepository
	expenseRepo repository.ExpenseRepository
}

func NewHistoryService(
	sessionRepo repository.SessionRepository,
	txRepo repository.MembershipTransactionRepository,
	expenseRepo repository.ExpenseRepository,
) HistoryService {
	return &historyService{
		sessionRepo: sessionRepo,
		txRepo:      txRepo,
		expenseRepo: expenseRepo,
	}
}

// windowBounds resolves a window to [from, to) anchored at local midnight.
// Daily covers today; weekly and monthly cover the trailing 7 and 30
// calendar days ending with today.
func windowBounds(window HistoryWindow, now time.Time) (time.Time, time.Time, error) {
	year, month, day := now.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	to := dayStart.AddDate(0, 0, 1)

	switch window {
	case HistoryWindowDaily:
		return dayStart, to, nil
	case HistoryWindowWeekly:
		return dayStart.AddDate(0, 0, -6), to, nil
	case HistoryWindowMonthly:
		return dayStart.AddDate(0, 0, -29), to, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown history window %q: %w", window, domain.ErrValidation)
	}
}

func (s *historyService) Summarize(ctx context.Context, window HistoryWindow, now time.Time) (*HistorySummary, error) {
	from, to, err := windowBounds(window, now)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListClosedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load closed sessions: %w", err)
	}
	txs, err := s.txRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load membership transactions: %w", err)
	}
	expenses, err := s.expenseRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	summary := &HistorySummary{
		Window: window,
		From:   from,
		To:     to,
	}

	income := map[string]int32{}
	expense := map[string]int32{}
	loc := now.Location()
	dayKey := func(t time.Time) string {
		return t.In(loc).Format("2006-01-02")
	}

	for _, sess := range sessions {
		summary.RentalIncome += sess.TotalPrice
		income[dayKey(sess.StartTime)] += sess.TotalPrice
		summary.Rows = append(summary.Rows, ReportRow{
			Timestamp: sess.StartTime,
			Actor:     sess.CustomerName,
			Kind:      "rental",
			Detail:    fmt.Sprintf("Console rental (%s)", sess.ConsoleID),
			Amount:    sess.TotalPrice,
		})
	}
	for _, tx := range txs {
		summary.MembershipIncome += tx.Amount
		income[dayKey(tx.Timestamp)] += tx.Amount
		summary.Rows = append(summary.Rows, ReportRow{
			Timestamp: tx.Timestamp,
			Actor:     tx.MemberName,
			Kind:      "membership",
			Detail:    fmt.Sprintf("%s package", tx.PackageKind),
			Note:      tx.Note,
			Amount:    tx.Amount,
		})
	}
	for _, exp := range expenses {
		summary.TotalExpense += exp.Amount
		expense[dayKey(exp.Timestamp)] += exp.Amount
		summary.Rows = append(summary.Rows, ReportRow{
			Timestamp: exp.Timestamp,
			Actor:     exp.StaffName,
			Kind:      "expense",
			Note:      exp.Note,
			Amount:    -exp.Amount,
		})
	}

	summary.TotalIncome = summary.RentalIncome + summary.MembershipIncome
	summary.NetProfit = summary.TotalIncome - summary.TotalExpense

	// One bucket per calendar day across the whole window, zero-filled so
	// charts get a continuous series.
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := dayKey(d)
		summary.Days = append(summary.Days, DailyBucket{
			Date:    key,
			Income:  income[key],
			Expense: expense[key],
			Profit:  income[key] - expense[key],
		})
	}

	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Timestamp.After(summary.Rows[j].Timestamp)
	})
	return summary, nil
}
