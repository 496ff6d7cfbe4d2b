package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gamestation-backend/internal/domain"
)

func TestWindowBounds(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		window HistoryWindow
		from   time.Time
		days   int
	}{
		{"daily covers today", HistoryWindowDaily, dayStart, 1},
		{"weekly covers trailing 7 days", HistoryWindowWeekly, dayStart.AddDate(0, 0, -6), 7},
		{"monthly covers trailing 30 days", HistoryWindowMonthly, dayStart.AddDate(0, 0, -29), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := windowBounds(tt.window, now)
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, dayStart.AddDate(0, 0, 1), to)
			assert.Equal(t, tt.days, int(to.Sub(from).Hours()/24))
		})
	}

	t.Run("unknown window fails", func(t *testing.T) {
		_, _, err := windowBounds(HistoryWindow("yearly"), now)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.Local)
	today := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	sessionRepo := new(MockSessionRepository)
	txRepo := new(MockMembershipTransactionRepository)
	expenseRepo := new(MockExpenseRepository)
	svc := NewHistoryService(sessionRepo, txRepo, expenseRepo)

	end := today.Add(time.Hour)
	sessionRepo.On("ListClosedBetween", ctx, mock.Anything, mock.Anything).Return([]domain.RentalSession{
		{ID: "sess-1", ConsoleID: "con-1", CustomerName: "Budi", StartTime: today, EndTime: &end, TotalPrice: 15000},
		{ID: "sess-2", ConsoleID: "con-2", CustomerName: "Sari", StartTime: yesterday, TotalPrice: 8000},
	}, nil)
	txRepo.On("ListBetween", ctx, mock.Anything, mock.Anything).Return([]domain.MembershipTransaction{
		{ID: "tx-1", MemberName: "Budi", PackageKind: domain.PackageKindBasic, Amount: 50000, Timestamp: today, Note: "PS4/PS5 (New)"},
	}, nil)
	expenseRepo.On("ListBetween", ctx, mock.Anything, mock.Anything).Return([]domain.ExpenseRecord{
		{ID: "exp-1", Note: "Galon air", Amount: 20000, Timestamp: yesterday, StaffName: "Andi"},
	}, nil)

	summary, err := svc.Summarize(ctx, HistoryWindowWeekly, now)
	require.NoError(t, err)

	assert.Equal(t, int32(23000), summary.RentalIncome)
	assert.Equal(t, int32(50000), summary.MembershipIncome)
	assert.Equal(t, int32(73000), summary.TotalIncome)
	assert.Equal(t, int32(20000), summary.TotalExpense)
	assert.Equal(t, int32(53000), summary.NetProfit)

	require.Len(t, summary.Days, 7)
	byDate := map[string]DailyBucket{}
	for _, d := range summary.Days {
		byDate[d.Date] = d
	}
	assert.Equal(t, int32(65000), byDate["2026-03-10"].Income)
	assert.Equal(t, int32(8000), byDate["2026-03-09"].Income)
	assert.Equal(t, int32(20000), byDate["2026-03-09"].Expense)
	assert.Equal(t, int32(-12000), byDate["2026-03-09"].Profit)
	// Empty days stay in the series zero-filled.
	assert.Equal(t, int32(0), byDate["2026-03-06"].Income)

	require.Len(t, summary.Rows, 4)
	// Rows come back newest first.
	for i := 1; i < len(summary.Rows); i++ {
		assert.False(t, summary.Rows[i-1].Timestamp.Before(summary.Rows[i].Timestamp))
	}
	assert.Equal(t, int32(-20000), rowByKind(summary.Rows, "expense").Amount)
}

func rowByKind(rows []ReportRow, kind string) ReportRow {
	for _, r := range rows {
		if r.Kind == kind {
			return r
		}
	}
	return ReportRow{}
}
