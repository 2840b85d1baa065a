package httpapi

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
)

type ProductRepo struct {
	api *apiclient.Client
}

func NewProductRepo(api *apiclient.Client) *ProductRepo {
	return &ProductRepo{api: api}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	body := struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}{Name: p.Name, Status: p.Status}

	var created domain.Product
	if err := r.api.Post(ctx, "/items", body, &created); err != nil {
		return domain.Product{}, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.api.Get(ctx, "/items", &products); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
