package adapter

import (
	"context"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
)

type OrderServicePlacer struct {
	svc *orderapp.Service
}

func NewOrderServicePlacer(svc *orderapp.Service) *OrderServicePlacer {
	return &OrderServicePlacer{svc: svc}
}

func (p *OrderServicePlacer) PlaceOrder(ctx context.Context) (uint64, error) {
	receipt, err := p.svc.CreateOrder(ctx)
	if err != nil {
		return 0, err
	}
	return receipt.ID, nil
}
