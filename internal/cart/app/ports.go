package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// RemoteCart is the backend that owns the authoritative cart.
type RemoteCart interface {
	GetCart(ctx context.Context) (domain.Snapshot, error)
	AddItem(ctx context.Context, itemID uint64) error
	RemoveItem(ctx context.Context, itemID uint64) error
}

// Credentials reports whether a usable bearer token is present.
type Credentials interface {
	Token(ctx context.Context) (string, bool)
}

// Notifier surfaces transient, user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
