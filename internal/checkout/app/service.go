package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
)

const (
	msgEmptyCart    = "Your cart is empty."
	msgOrderPlaced  = "Order placed successfully!"
	msgCheckoutFail = "Checkout failed."
)

var ErrEmptyCart = errors.New("cart is empty")

// CartReader exposes the synchronized cart to checkout.
type CartReader interface {
	GetCart(ctx context.Context) []CartLine
	// Clear drops the local cart count once an order consumed the cart.
	Clear()
}

type CartLine struct {
	ItemID   uint64
	Name     string
	Quantity int
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context) (orderID uint64, err error)
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Service struct {
	Cart   CartReader
	Orders OrderPlacer
	Notify Notifier

	log *slog.Logger
}

func NewService(cart CartReader, orders OrderPlacer, notify Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		Cart:   cart,
		Orders: orders,
		Notify: notify,
		log:    log,
	}
}

// Review fetches the current cart and totals it.
func (s *Service) Review(ctx context.Context) (domain.Summary, error) {
	items := s.Cart.GetCart(ctx)
	if len(items) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}

	summary := domain.Summary{Lines: make([]domain.SummaryLine, 0, len(items))}
	for _, it := range items {
		if it.Quantity <= 0 {
			return domain.Summary{}, fmt.Errorf("item %d: quantity must be positive, got %d", it.ItemID, it.Quantity)
		}
		summary.Lines = append(summary.Lines, domain.SummaryLine{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Quantity: it.Quantity,
		})
		summary.TotalItems += it.Quantity
	}
	return summary, nil
}

// PlaceOrder turns the current cart into an order. On success the local
// cart count is cleared without a re-fetch, since the order consumed the
// remote cart.
func (s *Service) PlaceOrder(ctx context.Context) (domain.Result, error) {
	summary, err := s.Review(ctx)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			s.Notify.Error(msgEmptyCart)
		} else {
			s.Notify.Error(msgCheckoutFail)
		}
		return domain.Result{}, err
	}

	orderID, err := s.Orders.PlaceOrder(ctx)
	if err != nil {
		s.log.Warn("checkout failed", slog.Any("err", err))
		msg, ok := apiclient.MessageOf(err)
		if !ok {
			msg = msgCheckoutFail
		}
		s.Notify.Error(msg)
		return domain.Result{}, fmt.Errorf("place order: %w", err)
	}

	s.Cart.Clear()
	s.Notify.Success(msgOrderPlaced)
	s.log.Info("order placed", slog.Uint64("order_id", orderID), slog.Int("items", summary.TotalItems))

	return domain.Result{OrderID: orderID, Summary: summary}, nil
}
