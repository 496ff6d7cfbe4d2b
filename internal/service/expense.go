package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) RecordExpense(ctx context.Context, note string, amount int32, staff *domain.Staff, now time.Time) (*domain.ExpenseRecord, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("expense note is required: %w", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive: %w", domain.ErrValidation)
	}

	rec := &domain.ExpenseRecord{
		ID:        uuid.NewString(),
		Note:      note,
		Amount:    amount,
		Timestamp: now,
	}
	if staff != nil {
		rec.StaffID = staff.ID
		rec.StaffName = staff.Name
	}
	if err := s.expenseRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return rec, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error) {
	return s.expenseRepo.ListBetween(ctx, from, to)
}
