package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartSyncReader struct {
	sync *cartapp.Synchronizer
}

func NewCartSyncReader(sync *cartapp.Synchronizer) *CartSyncReader {
	return &CartSyncReader{sync: sync}
}

// GetCart refreshes through the synchronizer so the badge count and the
// reviewed cart come from the same fetch.
func (r *CartSyncReader) GetCart(ctx context.Context) []checkoutapp.CartLine {
	snap := r.sync.Refresh(ctx)

	items := make([]checkoutapp.CartLine, 0, len(snap.Lines))
	for _, ln := range snap.Lines {
		items = append(items, checkoutapp.CartLine{
			ItemID:   ln.Item.ID,
			Name:     ln.Item.Name,
			Quantity: ln.Quantity,
		})
	}
	return items
}

func (r *CartSyncReader) Clear() {
	r.sync.Clear()
}
