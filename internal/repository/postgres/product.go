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

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, price, category, stock, complimentary, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Price, p.Category, p.Stock, p.Complimentary, now, now)
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, name, price, category, stock, complimentary, created_on, updated_on FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock, &p.Complimentary, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, price, category, stock, complimentary, created_on, updated_on FROM products ORDER BY category, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock, &p.Complimentary, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, price=$2, category=$3, stock=$4, complimentary=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Category, p.Stock, p.Complimentary, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "product", p.ID)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "product", id)
}

func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int32) error {
	// The WHERE guard keeps stock from going negative under concurrent sales.
	query := `UPDATE products SET stock = stock + $1, updated_on = $2 WHERE id = $3 AND stock + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %s stock adjustment by %d: %w", id, delta, domain.ErrValidation)
	}
	return nil
}
