package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// Messages shown to the user around cart mutations.
const (
	msgAddFailed     = "Failed to add item. Please try again."
	msgRemoveOK      = "Item quantity updated."
	msgRemoveFailed  = "Failed to update cart."
	addedMsgTemplate = "'%s' added to cart!"
)

// Synchronizer keeps a best-effort view of the remote cart's total quantity.
//
// Mutations bump the count before any network I/O and every path ends in a
// Refresh, so the count converges on the backend's answer after one
// round-trip. Remote failures never escape as anything but the error value
// of the operation that hit them.
type Synchronizer struct {
	remote RemoteCart
	creds  Credentials
	notify Notifier
	store  *CountStore
	log    *slog.Logger
}

// NewSynchronizer wires a synchronizer. A nil notifier discards messages and
// a nil logger falls back to slog.Default.
func NewSynchronizer(remote RemoteCart, creds Credentials, notify Notifier, log *slog.Logger) *Synchronizer {
	if notify == nil {
		notify = discardNotifier{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Synchronizer{
		remote: remote,
		creds:  creds,
		notify: notify,
		store:  NewCountStore(),
		log:    log,
	}
}

// Count returns the derived cart count.
func (s *Synchronizer) Count() int { return s.store.Count() }

// Known reports whether any refresh or mutation has set the count yet.
func (s *Synchronizer) Known() bool { return s.store.Known() }

// Subscribe observes count changes. See CountStore.Subscribe.
func (s *Synchronizer) Subscribe(fn func(int)) func() { return s.store.Subscribe(fn) }

// Refresh fetches the authoritative cart and sets the count to its total.
// Without a credential, or when the fetch fails, the count drops to zero and
// an empty snapshot is returned.
func (s *Synchronizer) Refresh(ctx context.Context) domain.Snapshot {
	if _, ok := s.creds.Token(ctx); !ok {
		s.store.Set(0)
		return domain.Snapshot{}
	}

	snap, err := s.remote.GetCart(ctx)
	if err != nil {
		s.log.Warn("cart refresh failed", slog.Any("err", err))
		s.store.Set(0)
		return domain.Snapshot{}
	}

	n := s.store.Set(snap.TotalQuantity())
	s.log.Debug("cart refreshed", slog.Int("count", n), slog.Int("lines", len(snap.Lines)))
	return snap
}

// AddItem bumps the count, confirms to the user, then performs the remote
// add. On failure the bump is rolled back before reconciling.
func (s *Synchronizer) AddItem(ctx context.Context, item domain.ItemRef) error {
	s.store.Adjust(+1)
	s.notify.Success(fmt.Sprintf(addedMsgTemplate, item.Name))

	if err := s.remote.AddItem(ctx, item.ID); err != nil {
		s.log.Warn("add item failed", slog.Uint64("item_id", item.ID), slog.Any("err", err))
		s.store.Adjust(-1)
		s.notify.Error(msgAddFailed)
		s.Refresh(ctx)
		return fmt.Errorf("add item %d: %w", item.ID, err)
	}

	s.Refresh(ctx)
	return nil
}

// RemoveItem decrements the count (never below zero), performs the remote
// removal and reconciles whatever the outcome.
func (s *Synchronizer) RemoveItem(ctx context.Context, itemID uint64) error {
	s.store.Adjust(-1)

	err := s.remote.RemoveItem(ctx, itemID)
	s.Refresh(ctx)
	if err != nil {
		s.log.Warn("remove item failed", slog.Uint64("item_id", itemID), slog.Any("err", err))
		s.notify.Error(msgRemoveFailed)
		return fmt.Errorf("remove item %d: %w", itemID, err)
	}

	s.notify.Success(msgRemoveOK)
	return nil
}

// Clear zeroes the count without re-fetching. Callers use it after an order
// has consumed the remote cart.
func (s *Synchronizer) Clear() {
	s.store.Set(0)
}

// Reset discards cart state on logout.
func (s *Synchronizer) Reset() {
	s.store.Forget()
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Error(string)   {}
