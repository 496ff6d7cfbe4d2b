package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository"
	"gamestation-backend/internal/utils"
)

type pricingService struct {
	mu          sync.RWMutex
	rates       utils.RateTable
	pricingRepo repository.PricingRepository
}

// NewPricingService builds the in-memory rate table from the persisted rules,
// falling back to the configured defaults for console types with no row yet.
func NewPricingService(ctx context.Context, pricingRepo repository.PricingRepository, defaults utils.RateTable) (PricingService, error) {
	rates := make(utils.RateTable, len(defaults))
	for t, rule := range defaults {
		rates[t] = rule
	}

	stored, err := pricingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing rules: %w", err)
	}
	for _, rule := range stored {
		rates[rule.ConsoleType] = rule
	}

	return &pricingService{rates: rates, pricingRepo: pricingRepo}, nil
}

func (s *pricingService) RateFor(consoleType domain.ConsoleType, at time.Time) int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.HourlyRate(s.rates, consoleType, at)
}

func (s *pricingService) SetRate(ctx context.Context, consoleType domain.ConsoleType, period domain.PricingPeriod, value int32) error {
	if !domain.ValidConsoleType(consoleType) {
		return fmt.Errorf("console type %q: %w", consoleType, domain.ErrValidation)
	}
	if period != domain.PricingPeriodDay && period != domain.PricingPeriodNight {
		return fmt.Errorf("pricing period %q: %w", period, domain.ErrValidation)
	}
	if value < 0 {
		value = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rule := s.rates[consoleType]
	rule.ConsoleType = consoleType
	if period == domain.PricingPeriodDay {
		rule.DayRate = value
	} else {
		rule.NightRate = value
	}

	if err := s.pricingRepo.Upsert(ctx, &rule); err != nil {
		return fmt.Errorf("persist pricing rule: %w", err)
	}
	s.rates[consoleType] = rule

	logger.Info("Pricing rule updated", "console_type", consoleType, "period", period, "rate", value)
	return nil
}

func (s *pricingService) Rates() utils.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(utils.RateTable, len(s.rates))
	for t, rule := range s.rates {
		out[t] = rule
	}
	return out
}
