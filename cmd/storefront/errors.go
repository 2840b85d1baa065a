package main

import (
	"errors"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	credapp "github.com/dwikikusuma/storefront/internal/credential/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/pkg/apiclient"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnavailable = 3
	exitAuth        = 4
)

// reportedError marks a failure the notifier already showed to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// usageError is a bad argument caught before any service call.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

// exitStatusFor maps a command error to the process exit code, a short
// kind for logs and the message to show. show is false when the user has
// already seen a notification for err.
func exitStatusFor(err error) (code int, kind, msg string, show bool) {
	if err == nil {
		return exitOK, "OK", "", false
	}

	var rep reportedError
	show = !errors.As(err, &rep)

	var usage usageError
	switch {
	case errors.As(err, &usage):
		return exitUsage, "USAGE", usage.msg, show
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, credapp.ErrInvalidInput):
		return exitUsage, "INVALID_ARGUMENT", "Please check your input and try again.", show
	case errors.Is(err, catalogapp.ErrNotFound):
		return exitFailure, "NOT_FOUND", "Product not found.", show
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return exitFailure, "EMPTY_CART", "Your cart is empty.", show
	case errors.Is(err, apiclient.ErrUnauthorized):
		return exitAuth, "UNAUTHENTICATED", "Your session has expired. Please set a new token.", show
	case errors.Is(err, catalogapp.ErrCatalogUnavailable):
		return exitUnavailable, "UNAVAILABLE", "Could not load products.", show
	case errors.Is(err, orderapp.ErrHistoryUnavailable):
		return exitUnavailable, "UNAVAILABLE", "Could not load your order history.", show
	}

	if m, ok := apiclient.MessageOf(err); ok {
		return exitFailure, "API", m, show
	}
	return exitFailure, "INTERNAL", "Something went wrong. Please try again.", show
}
