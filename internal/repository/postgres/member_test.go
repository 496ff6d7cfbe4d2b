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

func TestMemberRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		packages, err := json.Marshal([]domain.MemberPackage{{
			ID:                   "pkg-1",
			Kind:                 domain.PackageKindBasic,
			RemainingMinutes:     600,
			ExpiryDate:           time.Now().AddDate(0, 0, 30),
			EligibleConsoleTypes: []domain.ConsoleType{domain.ConsoleTypePS4, domain.ConsoleTypePS5},
		}})
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"id", "name", "phone", "total_rentals", "total_spend", "packages", "created_on", "updated_on"}).
			AddRow("member-1", "Budi", "0812", int32(2), int32(75000), packages, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs("member-1").
			WillReturnRows(rows)

		member, err := repo.GetByID(ctx, "member-1")
		assert.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "Budi", member.Name)
		require.Len(t, member.Packages, 1)
		assert.Equal(t, int32(600), member.Packages[0].RemainingMinutes)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "total_rentals", "total_spend", "packages", "created_on", "updated_on"}))

		member, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, member)
	})
}

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := &domain.Member{ID: "member-1", Name: "Budi", Phone: "0812"}

	mock.ExpectExec("INSERT INTO members").
		WithArgs(m.ID, m.Name, m.Phone, m.TotalRentals, m.TotalSpend, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(ctx, m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := &domain.Member{ID: "member-1", Name: "Budi", Phone: "0812", TotalRentals: 3, TotalSpend: 90000}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE members SET").
			WithArgs(m.Name, m.Phone, m.TotalRentals, m.TotalSpend, sqlmock.AnyArg(), sqlmock.AnyArg(), m.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, m))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE members SET").
			WithArgs(m.Name, m.Phone, m.TotalRentals, m.TotalSpend, sqlmock.AnyArg(), sqlmock.AnyArg(), m.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, m), domain.ErrNotFound)
	})
}

func TestMemberRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "total_rentals", "total_spend", "packages", "created_on", "updated_on"}).
		AddRow("member-1", "Budi", "0812", int32(0), int32(0), []byte("[]"), time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM members WHERE name ILIKE").
		WithArgs("bud").
		WillReturnRows(rows)

	members, err := repo.Search(ctx, "bud")
	assert.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Budi", members[0].Name)
}
