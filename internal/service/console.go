package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type consoleService struct {
	consoleRepo repository.ConsoleRepository
	sessionRepo repository.SessionRepository
}

func NewConsoleService(consoleRepo repository.ConsoleRepository, sessionRepo repository.SessionRepository) ConsoleService {
	return &consoleService{consoleRepo: consoleRepo, sessionRepo: sessionRepo}
}

func (s *consoleService) CreateConsole(ctx context.Context, name string, consoleType domain.ConsoleType) (*domain.Console, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("console name is required: %w", domain.ErrValidation)
	}
	if !domain.ValidConsoleType(consoleType) {
		return nil, fmt.Errorf("unknown console type %q: %w", consoleType, domain.ErrValidation)
	}

	now := time.Now()
	c := &domain.Console{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      consoleType,
		Status:    domain.ConsoleStatusAvailable,
		CreatedOn: now,
		UpdatedOn: now,
	}
	if err := s.consoleRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create console: %w", err)
	}
	return c, nil
}

func (s *consoleService) GetConsole(ctx context.Context, id string) (*domain.Console, error) {
	return s.consoleRepo.GetByID(ctx, id)
}

func (s *consoleService) ListConsoles(ctx context.Context) ([]domain.Console, error) {
	return s.consoleRepo.List(ctx)
}

func (s *consoleService) UpdateConsole(ctx context.Context, c *domain.Console) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("console name is required: %w", domain.ErrValidation)
	}
	if !domain.ValidConsoleType(c.Type) {
		return fmt.Errorf("unknown console type %q: %w", c.Type, domain.ErrValidation)
	}
	switch c.Status {
	case domain.ConsoleStatusAvailable, domain.ConsoleStatusInUse, domain.ConsoleStatusMaintenance:
	default:
		return fmt.Errorf("unknown console status %q: %w", c.Status, domain.ErrValidation)
	}
	c.UpdatedOn = time.Now()
	return s.consoleRepo.Update(ctx, c)
}

func (s *consoleService) DeleteConsole(ctx context.Context, id string) error {
	// A console with a running session cannot be removed.
	if _, err := s.sessionRepo.GetActiveByConsole(ctx, id); err == nil {
		return fmt.Errorf("console %s has an active session: %w", id, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.consoleRepo.Delete(ctx, id)
}
