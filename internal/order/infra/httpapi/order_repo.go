package httpapi

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
)

type OrderRepo struct {
	api *apiclient.Client
}

func NewOrderRepo(api *apiclient.Client) *OrderRepo {
	return &OrderRepo{api: api}
}

// Create posts an empty body; the backend builds the order from the
// caller's active cart and answers {"order": {...}}.
func (r *OrderRepo) Create(ctx context.Context) (domain.Receipt, error) {
	var receipt domain.Receipt
	if err := r.api.PostMember(ctx, "/orders", struct{}{}, "order", &receipt); err != nil {
		return domain.Receipt{}, fmt.Errorf("create order: %w", err)
	}
	return receipt, nil
}

func (r *OrderRepo) ListMine(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.api.Get(ctx, "/my-orders", &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
