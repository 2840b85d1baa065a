package httpapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
)

// CartClient reaches the backend's per-user cart endpoints.
type CartClient struct {
	api *apiclient.Client
}

func NewCartClient(api *apiclient.Client) *CartClient {
	return &CartClient{api: api}
}

// GetCart returns the caller's active cart. A user without an active cart
// gets an empty snapshot.
func (c *CartClient) GetCart(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := c.api.Get(ctx, "/my-cart", &snap); err != nil {
		return domain.Snapshot{}, err
	}

	// The backend returns lines with zero quantities only transiently.
	lines := snap.Lines[:0]
	for _, ln := range snap.Lines {
		if ln.Quantity > 0 {
			lines = append(lines, ln)
		}
	}
	snap.Lines = lines
	return snap, nil
}

// AddItem adds one unit of itemID to the caller's cart.
func (c *CartClient) AddItem(ctx context.Context, itemID uint64) error {
	body := struct {
		ItemID uint64 `json:"item_id"`
	}{ItemID: itemID}
	if err := c.api.Post(ctx, "/carts", body, nil); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

// RemoveItem takes one unit of itemID out of the caller's cart.
func (c *CartClient) RemoveItem(ctx context.Context, itemID uint64) error {
	if err := c.api.Delete(ctx, "/carts/items/"+strconv.FormatUint(itemID, 10)); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	return nil
}
