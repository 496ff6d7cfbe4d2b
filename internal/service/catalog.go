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

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func validCategory(c domain.ProductCategory) bool {
	switch c {
	case domain.ProductCategoryFood, domain.ProductCategoryDrink, domain.ProductCategoryAddon:
		return true
	}
	return false
}

func (s *catalogService) CreateProduct(ctx context.Context, name string, price int32, category domain.ProductCategory, stock int32, complimentary bool) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("product price must not be negative: %w", domain.ErrValidation)
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown product category %q: %w", category, domain.ErrValidation)
	}
	if complimentary && category != domain.ProductCategoryDrink {
		return nil, fmt.Errorf("only a drink can be complimentary: %w", domain.ErrValidation)
	}

	now := time.Now()
	p := &domain.Product{
		ID:            uuid.NewString(),
		Name:          name,
		Price:         price,
		Category:      category,
		Stock:         stock,
		Complimentary: complimentary,
		CreatedOn:     now,
		UpdatedOn:     now,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required: %w", domain.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative: %w", domain.ErrValidation)
	}
	if !validCategory(p.Category) {
		return fmt.Errorf("unknown product category %q: %w", p.Category, domain.ErrValidation)
	}
	p.UpdatedOn = time.Now()
	return s.productRepo.Update(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) AdjustStock(ctx context.Context, id string, delta int32) error {
	return s.productRepo.AdjustStock(ctx, id, delta)
}

func (s *catalogService) ComplimentaryProduct(ctx context.Context) (*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Complimentary {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("no complimentary product configured: %w", domain.ErrNotFound)
}
