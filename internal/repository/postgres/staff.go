package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (id, username, password_hash, name, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Username, s.PasswordHash, s.Name, s.Role, now, now)
	return err
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	query := `SELECT id, username, password_hash, name, role, created_on, updated_on FROM staff WHERE id = $1`
	return r.scanStaff(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	query := `SELECT id, username, password_hash, name, role, created_on, updated_on FROM staff WHERE username = $1`
	return r.scanStaff(r.db.QueryRowContext(ctx, query, username), username)
}

func (r *staffRepository) scanStaff(row *sql.Row, key string) (*domain.Staff, error) {
	s := &domain.Staff{}
	err := row.Scan(&s.ID, &s.Username, &s.PasswordHash, &s.Name, &s.Role, &s.CreatedOn, &s.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("staff %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT id, username, password_hash, name, role, created_on, updated_on FROM staff ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Username, &s.PasswordHash, &s.Name, &s.Role, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, s *domain.Staff) error {
	query := `UPDATE staff SET username=$1, password_hash=$2, name=$3, role=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, s.Username, s.PasswordHash, s.Name, s.Role, time.Now(), s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "staff", s.ID)
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "staff", id)
}
