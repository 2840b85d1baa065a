package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"golang.org/x/text/cases"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrCatalogUnavailable wraps any failure to load the product list.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name string) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, ErrInvalidInput
	}

	product, err := s.repo.Create(ctx, domain.Product{Name: name, Status: domain.StatusAvailable})
	if err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// ListProducts returns the catalog filtered to products whose name contains
// query, compared case-insensitively. An empty query matches everything.
func (s *Service) ListProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	// Casers carry state; one per call keeps the service safe to share.
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return products, nil
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProduct resolves one product by id from the current catalog.
func (s *Service) GetProduct(ctx context.Context, id uint64) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, ErrInvalidInput
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}
