package postgres

import (
	"context"
	"database/sql"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/repository"
)

type membershipTransactionRepository struct {
	db *sql.DB
}

func NewMembershipTransactionRepository(db *sql.DB) repository.MembershipTransactionRepository {
	return &membershipTransactionRepository{db: db}
}

func (r *membershipTransactionRepository) Create(ctx context.Context, tx *domain.MembershipTransaction) error {
	query := `INSERT INTO membership_transactions (id, member_id, member_name, package_kind, amount, timestamp, note)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, tx.ID, tx.MemberID, tx.MemberName, tx.PackageKind, tx.Amount, tx.Timestamp, tx.Note)
	return err
}

func (r *membershipTransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.MembershipTransaction, error) {
	query := `SELECT id, member_id, member_name, package_kind, amount, timestamp, note
	          FROM membership_transactions WHERE timestamp >= $1 AND timestamp < $2 ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.MembershipTransaction
	for rows.Next() {
		var tx domain.MembershipTransaction
		if err := rows.Scan(&tx.ID, &tx.MemberID, &tx.MemberName, &tx.PackageKind, &tx.Amount, &tx.Timestamp, &tx.Note); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
