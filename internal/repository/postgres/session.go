package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `id, console_id, member_id, customer_name, start_time, end_time, is_active,
	items, is_membership_backed, subtotal_rental, subtotal_items, discount_amount, total_price,
	created_on, updated_on`

func (r *sessionRepository) Create(ctx context.Context, s *domain.RentalSession) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `INSERT INTO rental_sessions (` + sessionColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now()
	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.ConsoleID, nullString(s.MemberID), s.CustomerName, s.StartTime, s.EndTime, s.IsActive,
		items, s.IsMembershipBacked, s.SubtotalRental, s.SubtotalItems, s.DiscountAmount, s.TotalPrice,
		now, now)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.RentalSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM rental_sessions WHERE id = $1`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return s, err
}

func (r *sessionRepository) GetActiveByConsole(ctx context.Context, consoleID string) (*domain.RentalSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM rental_sessions WHERE console_id = $1 AND is_active = true`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, consoleID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("active session for console %s: %w", consoleID, domain.ErrNotFound)
	}
	return s, err
}

func (r *sessionRepository) ListActive(ctx context.Context) ([]domain.RentalSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM rental_sessions WHERE is_active = true ORDER BY start_time`
	return r.querySessions(ctx, query)
}

func (r *sessionRepository) ListClosedBetween(ctx context.Context, from, to time.Time) ([]domain.RentalSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM rental_sessions
	          WHERE is_active = false AND start_time >= $1 AND start_time < $2 ORDER BY start_time DESC`
	return r.querySessions(ctx, query, from, to)
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.RentalSession) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `UPDATE rental_sessions SET end_time=$1, is_active=$2, items=$3, subtotal_rental=$4,
	          subtotal_items=$5, discount_amount=$6, total_price=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query,
		s.EndTime, s.IsActive, items, s.SubtotalRental,
		s.SubtotalItems, s.DiscountAmount, s.TotalPrice, time.Now(), s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "session", s.ID)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *sessionRepository) scanSession(row rowScanner) (*domain.RentalSession, error) {
	s := &domain.RentalSession{}
	var items []byte
	var memberID sql.NullString
	err := row.Scan(
		&s.ID, &s.ConsoleID, &memberID, &s.CustomerName, &s.StartTime, &s.EndTime, &s.IsActive,
		&items, &s.IsMembershipBacked, &s.SubtotalRental, &s.SubtotalItems, &s.DiscountAmount, &s.TotalPrice,
		&s.CreatedOn, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	s.MemberID = memberID.String
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for session %s: %w", s.ID, err)
		}
	}
	return s, nil
}

func (r *sessionRepository) querySessions(ctx context.Context, query string, args ...interface{}) ([]domain.RentalSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.RentalSession
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
