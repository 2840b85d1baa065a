package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRemote struct{ snap cartdomain.Snapshot }

func (s stubRemote) GetCart(context.Context) (cartdomain.Snapshot, error) { return s.snap, nil }
func (stubRemote) AddItem(context.Context, uint64) error                  { return nil }
func (stubRemote) RemoveItem(context.Context, uint64) error               { return nil }

type signedIn struct{}

func (signedIn) Token(context.Context) (string, bool) { return "t", true }

func TestCartSyncReader(t *testing.T) {
	remote := stubRemote{snap: cartdomain.Snapshot{Lines: []cartdomain.Line{
		{Item: cartdomain.ItemRef{ID: 1, Name: "Widget"}, Quantity: 3},
	}}}
	sync := cartapp.NewSynchronizer(remote, signedIn{}, nil, logger.Discard())
	reader := NewCartSyncReader(sync)

	lines := reader.GetCart(context.Background())
	require.Equal(t, []checkoutapp.CartLine{{ItemID: 1, Name: "Widget", Quantity: 3}}, lines)
	assert.Equal(t, 3, sync.Count(), "reading the cart refreshes the count")

	reader.Clear()
	assert.Equal(t, 0, sync.Count())
}
