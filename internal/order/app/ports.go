package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context) (domain.Receipt, error)
	ListMine(ctx context.Context) ([]domain.Order, error)
}
