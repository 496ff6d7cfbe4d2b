package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/security"
)

func hashedStaff(t *testing.T, password string) *domain.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Staff{
		ID:           "staff-1",
		Username:     "andi",
		PasswordHash: string(hash),
		Name:         "Andi",
		Role:         domain.StaffRoleStaff,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60)

	t.Run("valid credentials return a token", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		staffRepo.On("GetByUsername", ctx, "andi").Return(hashedStaff(t, "hunter2hunter2"), nil)
		svc := NewAuthService(staffRepo, tokens)

		token, staff, err := svc.Login(ctx, "andi", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "staff-1", staff.ID)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "staff-1", claims.StaffID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		staffRepo.On("GetByUsername", ctx, "andi").Return(hashedStaff(t, "hunter2hunter2"), nil)
		svc := NewAuthService(staffRepo, tokens)

		_, _, err := svc.Login(ctx, "andi", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user maps to the same error", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		staffRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		svc := NewAuthService(staffRepo, tokens)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreateStaff(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60)

	t.Run("hashes the password before storing", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		staffRepo.On("GetByUsername", ctx, "sari").Return(nil, domain.ErrNotFound)
		staffRepo.On("Create", ctx, mock.AnythingOfType("*domain.Staff")).Return(nil)
		svc := NewAuthService(staffRepo, tokens)

		staff, err := svc.CreateStaff(ctx, "sari", "password123", "Sari", domain.StaffRoleStaff)
		require.NoError(t, err)
		assert.NotEqual(t, "password123", staff.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte("password123")))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockStaffRepository), tokens)

		_, err := svc.CreateStaff(ctx, "sari", "short", "Sari", domain.StaffRoleStaff)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		staffRepo.On("GetByUsername", ctx, "andi").Return(hashedStaff(t, "hunter2hunter2"), nil)
		svc := NewAuthService(staffRepo, tokens)

		_, err := svc.CreateStaff(ctx, "andi", "password123", "Andi", domain.StaffRoleAdmin)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
