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

type consoleRepository struct {
	db *sql.DB
}

func NewConsoleRepository(db *sql.DB) repository.ConsoleRepository {
	return &consoleRepository{db: db}
}

func (r *consoleRepository) Create(ctx context.Context, c *domain.Console) error {
	query := `INSERT INTO consoles (id, name, type, status, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Type, c.Status, c.ImageURL, now, now)
	return err
}

func (r *consoleRepository) GetByID(ctx context.Context, id string) (*domain.Console, error) {
	c := &domain.Console{}
	query := `SELECT id, name, type, status, image_url, created_on, updated_on FROM consoles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Type, &c.Status, &c.ImageURL, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("console %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *consoleRepository) List(ctx context.Context) ([]domain.Console, error) {
	query := `SELECT id, name, type, status, image_url, created_on, updated_on FROM consoles ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consoles []domain.Console
	for rows.Next() {
		var c domain.Console
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Status, &c.ImageURL, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		consoles = append(consoles, c)
	}
	return consoles, rows.Err()
}

func (r *consoleRepository) Update(ctx context.Context, c *domain.Console) error {
	query := `UPDATE consoles SET name=$1, type=$2, status=$3, image_url=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Type, c.Status, c.ImageURL, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "console", c.ID)
}

func (r *consoleRepository) UpdateStatus(ctx context.Context, id string, status domain.ConsoleStatus) error {
	query := `UPDATE consoles SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "console", id)
}

func (r *consoleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consoles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "console", id)
}

// requireRowAffected maps a zero-row write to domain.ErrNotFound.
func requireRowAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
