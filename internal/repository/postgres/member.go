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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	packages, err := json.Marshal(m.Packages)
	if err != nil {
		return fmt.Errorf("marshal packages: %w", err)
	}
	query := `INSERT INTO members (id, name, phone, total_rentals, total_spend, packages, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now()
	_, err = r.db.ExecContext(ctx, query, m.ID, m.Name, m.Phone, m.TotalRentals, m.TotalSpend, packages, now, now)
	return err
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	m := &domain.Member{}
	var packages []byte
	query := `SELECT id, name, phone, total_rentals, total_spend, packages, created_on, updated_on FROM members WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Phone, &m.TotalRentals, &m.TotalSpend, &packages, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if len(packages) > 0 {
		if err := json.Unmarshal(packages, &m.Packages); err != nil {
			return nil, fmt.Errorf("unmarshal packages for member %s: %w", id, err)
		}
	}
	return m, nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT id, name, phone, total_rentals, total_spend, packages, created_on, updated_on FROM members ORDER BY name`
	return r.queryMembers(ctx, query)
}

func (r *memberRepository) Search(ctx context.Context, q string) ([]domain.Member, error) {
	query := `SELECT id, name, phone, total_rentals, total_spend, packages, created_on, updated_on
	          FROM members WHERE name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%' ORDER BY name`
	return r.queryMembers(ctx, query, q)
}

func (r *memberRepository) queryMembers(ctx context.Context, query string, args ...interface{}) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var packages []byte
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.TotalRentals, &m.TotalSpend, &packages, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		if len(packages) > 0 {
			if err := json.Unmarshal(packages, &m.Packages); err != nil {
				return nil, fmt.Errorf("unmarshal packages for member %s: %w", m.ID, err)
			}
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	packages, err := json.Marshal(m.Packages)
	if err != nil {
		return fmt.Errorf("marshal packages: %w", err)
	}
	query := `UPDATE members SET name=$1, phone=$2, total_rentals=$3, total_spend=$4, packages=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Phone, m.TotalRentals, m.TotalSpend, packages, time.Now(), m.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "member", m.ID)
}
