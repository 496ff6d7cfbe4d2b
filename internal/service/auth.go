package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository"
	"gamestation-backend/internal/security"
)

// ErrInvalidCredentials hides whether the username or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staffRepo: staffRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Staff, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	logger.Info("Staff logged in", "staff_id", staff.ID, "username", staff.Username, "role", staff.Role)
	return token, staff, nil
}

func validRole(role domain.StaffRole) bool {
	return role == domain.StaffRoleAdmin || role == domain.StaffRoleStaff
}

func (s *authService) CreateStaff(ctx context.Context, username, password, name string, role domain.StaffRole) (*domain.Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", domain.ErrValidation)
	}
	if !validRole(role) {
		return nil, fmt.Errorf("unknown staff role %q: %w", role, domain.ErrValidation)
	}
	if _, err := s.staffRepo.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %q already taken: %w", username, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	staff := &domain.Staff{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         role,
		CreatedOn:    now,
		UpdatedOn:    now,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return staff, nil
}

func (s *authService) GetStaff(ctx context.Context, id string) (*domain.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

func (s *authService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staffRepo.List(ctx)
}

func (s *authService) UpdateStaff(ctx context.Context, id, name, password string, role domain.StaffRole) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		staff.Name = strings.TrimSpace(name)
	}
	if role != "" {
		if !validRole(role) {
			return nil, fmt.Errorf("unknown staff role %q: %w", role, domain.ErrValidation)
		}
		staff.Role = role
	}
	if password != "" {
		if len(password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters: %w", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		staff.PasswordHash = string(hash)
	}
	staff.UpdatedOn = time.Now()
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return staff, nil
}

func (s *authService) DeleteStaff(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}
