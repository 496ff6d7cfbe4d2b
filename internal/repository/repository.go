package repository

import (
	"context"
	"time"

	"gamestation-backend/internal/domain"
)

type ConsoleRepository interface {
	Create(ctx context.Context, c *domain.Console) error
	GetByID(ctx context.Context, id string) (*domain.Console, error)
	List(ctx context.Context) ([]domain.Console, error)
	Update(ctx context.Context, c *domain.Console) error
	UpdateStatus(ctx context.Context, id string, status domain.ConsoleStatus) error
	Delete(ctx context.Context, id string) error
}

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Search(ctx context.Context, query string) ([]domain.Member, error)
	// Update writes the whole member row, including the package list.
	// Callers must hold the per-member lock across read-modify-write.
	Update(ctx context.Context, m *domain.Member) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// AdjustStock applies a delta to the stock count, refusing to go negative.
	AdjustStock(ctx context.Context, id string, delta int32) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.RentalSession) error
	GetByID(ctx context.Context, id string) (*domain.RentalSession, error)
	// GetActiveByConsole returns the console's single active session, or
	// domain.ErrNotFound when the console is free.
	GetActiveByConsole(ctx context.Context, consoleID string) (*domain.RentalSession, error)
	ListActive(ctx context.Context) ([]domain.RentalSession, error)
	ListClosedBetween(ctx context.Context, from, to time.Time) ([]domain.RentalSession, error)
	Update(ctx context.Context, s *domain.RentalSession) error
}

type MembershipTransactionRepository interface {
	Create(ctx context.Context, tx *domain.MembershipTransaction) error
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.MembershipTransaction, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.ExpenseRecord) error
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByUsername(ctx context.Context, username string) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id string) error
}

type PricingRepository interface {
	GetAll(ctx context.Context) ([]domain.PricingRule, error)
	Upsert(ctx context.Context, rule *domain.PricingRule) error
}
