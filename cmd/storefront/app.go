package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	carthttp "github.com/dwikikusuma/storefront/internal/cart/infra/httpapi"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/storefront/internal/catalog/infra/httpapi"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"

	credapp "github.com/dwikikusuma/storefront/internal/credential/app"
	credsqlite "github.com/dwikikusuma/storefront/internal/credential/infra/sqlite"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderhttp "github.com/dwikikusuma/storefront/internal/order/infra/httpapi"

	"github.com/dwikikusuma/storefront/internal/notify"
	shopapp "github.com/dwikikusuma/storefront/internal/shop/app"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/telemetry"
)

// app holds every wired service for one CLI invocation.
type app struct {
	log    *slog.Logger
	out    io.Writer
	notify *notify.Terminal

	store *credsqlite.Store
	creds *credapp.Service

	cart     *cartapp.Synchronizer
	catalog  *catalogapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
	shop     *shopapp.Service

	stopTelemetry func(context.Context) error
}

func newApp(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (*app, error) {
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  stderr,
	})

	stopTelemetry, err := telemetry.Setup(ctx, "storefront", cfg.OTelEndpoint)
	if err != nil {
		log.Warn("telemetry disabled", slog.Any("err", err))
	}

	store, err := credsqlite.Open(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	creds := credapp.NewService(store, log)

	api, err := apiclient.New(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout}, creds)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	notifier := notify.NewTerminal(stdout)

	// Catalog
	catalogSvc := catalogapp.NewService(cataloghttp.NewProductRepo(api))

	// Cart
	cartSync := cartapp.NewSynchronizer(carthttp.NewCartClient(api), creds, notifier, log)

	// Orders
	orderSvc := orderapp.NewService(orderhttp.NewOrderRepo(api))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartSyncReader(cartSync),
		checkoutadapter.NewOrderServicePlacer(orderSvc),
		notifier,
		log,
	)

	return &app{
		log:           log,
		out:           stdout,
		notify:        notifier,
		store:         store,
		creds:         creds,
		cart:          cartSync,
		catalog:       catalogSvc,
		orders:        orderSvc,
		checkout:      checkoutSvc,
		shop:          shopapp.NewService(catalogSvc, cartSync),
		stopTelemetry: stopTelemetry,
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if a.stopTelemetry != nil {
		if err := a.stopTelemetry(ctx); err != nil {
			a.log.Warn("telemetry shutdown", slog.Any("err", err))
		}
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn("close local storage", slog.Any("err", err))
	}
}
