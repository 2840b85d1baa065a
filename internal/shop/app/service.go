package app

import (
	"context"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"golang.org/x/sync/errgroup"
)

type CatalogReader interface {
	ListProducts(ctx context.Context, query string) ([]catalogdomain.Product, error)
}

// CartRefresher never fails; an unreachable cart reads as empty.
type CartRefresher interface {
	Refresh(ctx context.Context) cartdomain.Snapshot
}

// Storefront is what the shop view shows on load.
type Storefront struct {
	Products  []catalogdomain.Product
	Query     string
	CartCount int
}

type Service struct {
	Catalog CatalogReader
	Cart    CartRefresher
}

func NewService(catalog CatalogReader, cart CartRefresher) *Service {
	return &Service{Catalog: catalog, Cart: cart}
}

// Browse loads the filtered catalog and reconciles the cart count in
// parallel. Only a catalog failure is reported.
func (s *Service) Browse(ctx context.Context, query string) (Storefront, error) {
	var (
		products []catalogdomain.Product
		snap     cartdomain.Snapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.Catalog.ListProducts(gctx, query)
		return err
	})
	g.Go(func() error {
		// Not gctx: a failing catalog must not cancel the reconciliation.
		snap = s.Cart.Refresh(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Storefront{}, err
	}

	return Storefront{
		Products:  products,
		Query:     query,
		CartCount: snap.TotalQuantity(),
	}, nil
}
