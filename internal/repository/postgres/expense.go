package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.ExpenseRecord) error {
	query := `INSERT INTO expenses (id, note, amount, timestamp, staff_id, staff_name)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Note, e.Amount, e.Timestamp, e.StaffID, e.StaffName)
	return err
}

func (r *expenseRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error) {
	query := `SELECT id, note, amount, timestamp, staff_id, staff_name
	          FROM expenses WHERE timestamp >= $1 AND timestamp < $2 ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.ExpenseRecord
	for rows.Next() {
		var e domain.ExpenseRecord
		if err := rows.Scan(&e.ID, &e.Note, &e.Amount, &e.Timestamp, &e.StaffID, &e.StaffName); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
