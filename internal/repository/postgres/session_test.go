package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestation-backend/internal/domain"
)

var sessionTestColumns = []string{
	"id", "console_id", "member_id", "customer_name", "start_time", "end_time", "is_active",
	"items", "is_membership_backed", "subtotal_rental", "subtotal_items", "discount_amount", "total_price",
	"created_on", "updated_on",
}

func TestSessionRepository_GetActiveByConsole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		items, err := json.Marshal([]domain.CartItem{{ProductID: "prod-1", ProductName: "Es Teh", Quantity: 2, Price: 5000, Category: domain.ProductCategoryDrink}})
		require.NoError(t, err)

		rows := sqlmock.NewRows(sessionTestColumns).
			AddRow("sess-1", "con-1", "member-1", "Budi", time.Now(), nil, true,
				items, true, int32(0), int32(10000), int32(0), int32(10000),
				time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_sessions WHERE console_id = \\$1 AND is_active = true").
			WithArgs("con-1").
			WillReturnRows(rows)

		session, err := repo.GetActiveByConsole(ctx, "con-1")
		assert.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "member-1", session.MemberID)
		assert.True(t, session.IsMembershipBacked)
		require.Len(t, session.Items, 1)
		assert.Equal(t, int32(2), session.Items[0].Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_sessions WHERE console_id = \\$1 AND is_active = true").
			WithArgs("con-2").
			WillReturnRows(sqlmock.NewRows(sessionTestColumns))

		session, err := repo.GetActiveByConsole(ctx, "con-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, session)
	})
}

func TestSessionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("walk-in stores NULL member id", func(t *testing.T) {
		s := &domain.RentalSession{
			ID:           "sess-1",
			ConsoleID:    "con-1",
			CustomerName: "Walk In",
			StartTime:    time.Now(),
			IsActive:     true,
		}

		mock.ExpectExec("INSERT INTO rental_sessions").
			WithArgs(s.ID, s.ConsoleID, nullString(""), s.CustomerName, s.StartTime, s.EndTime, s.IsActive,
				sqlmock.AnyArg(), s.IsMembershipBacked, s.SubtotalRental, s.SubtotalItems, s.DiscountAmount, s.TotalPrice,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, s))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	end := time.Now()
	s := &domain.RentalSession{
		ID:             "sess-1",
		ConsoleID:      "con-1",
		EndTime:        &end,
		IsActive:       false,
		SubtotalRental: 11000,
		SubtotalItems:  5000,
		TotalPrice:     16000,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_sessions SET").
			WithArgs(s.EndTime, s.IsActive, sqlmock.AnyArg(), s.SubtotalRental,
				s.SubtotalItems, s.DiscountAmount, s.TotalPrice, sqlmock.AnyArg(), s.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, s))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_sessions SET").
			WithArgs(s.EndTime, s.IsActive, sqlmock.AnyArg(), s.SubtotalRental,
				s.SubtotalItems, s.DiscountAmount, s.TotalPrice, sqlmock.AnyArg(), s.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, s), domain.ErrNotFound)
	})
}

func TestSessionRepository_ListClosedBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now()
	end := to.Add(-time.Hour)

	rows := sqlmock.NewRows(sessionTestColumns).
		AddRow("sess-1", "con-1", nil, "Walk In", from.Add(time.Hour), &end, false,
			[]byte("[]"), false, int32(11000), int32(0), int32(0), int32(11000),
			time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rental_sessions").
		WithArgs(from, to).
		WillReturnRows(rows)

	sessions, err := repo.ListClosedBetween(ctx, from, to)
	assert.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Empty(t, sessions[0].MemberID)
	assert.Equal(t, int32(11000), sessions[0].TotalPrice)
}
