package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

// ErrHistoryUnavailable wraps any failure to load the order history.
var ErrHistoryUnavailable = errors.New("order history unavailable")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// CreateOrder turns the caller's active cart into an order.
func (s *Service) CreateOrder(ctx context.Context) (domain.Receipt, error) {
	return s.repo.Create(ctx)
}

// History lists the caller's orders, newest first.
func (s *Service) History(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListMine(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
