package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type pricingRepository struct {
	db *sql.DB
}

func NewPricingRepository(db *sql.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) GetAll(ctx context.Context) ([]domain.PricingRule, error) {
	query := `SELECT console_type, day_rate, night_rate FROM pricing_rules`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PricingRule
	for rows.Next() {
		var rule domain.PricingRule
		if err := rows.Scan(&rule.ConsoleType, &rule.DayRate, &rule.NightRate); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *pricingRepository) Upsert(ctx context.Context, rule *domain.PricingRule) error {
	query := `INSERT INTO pricing_rules (console_type, day_rate, night_rate, updated_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (console_type) DO UPDATE SET day_rate = $2, night_rate = $3, updated_on = $4`
	_, err := r.db.ExecContext(ctx, query, rule.ConsoleType, rule.DayRate, rule.NightRate, time.Now())
	return err
}
