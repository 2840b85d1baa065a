package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
)

func newShopCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shop [query]",
		Short: "List products, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := c.app.shop.Browse(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			newPrinter(c.stdout).storefront(sf)
			return nil
		},
	}
}

func newCatalogCmd(c *cli) *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog items",
	}
	catalog.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Add a product to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.app.catalog.CreateProduct(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			c.app.notify.Success(fmt.Sprintf("Created '%s' (#%d).", p.Name, p.ID))
			return nil
		},
	})
	return catalog
}

func newCartCmd(c *cli) *cobra.Command {
	var watch bool

	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := c.app.cart.Refresh(cmd.Context())
			newPrinter(c.stdout).cart(snap)
			return nil
		},
	}
	cart.PersistentFlags().BoolVar(&watch, "watch", false, "print every cart count change")

	cart.AddCommand(&cobra.Command{
		Use:   "add <item-id>",
		Short: "Add one unit of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			item, err := c.resolveItem(cmd, id)
			if err != nil {
				return err
			}
			defer c.watchCount(watch)()
			return reported(c.app.cart.AddItem(cmd.Context(), item))
		},
	})

	cart.AddCommand(&cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove one unit of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			defer c.watchCount(watch)()
			return reported(c.app.cart.RemoveItem(cmd.Context(), id))
		},
	})
	return cart
}

func newCheckoutCmd(c *cli) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(c.stdout)
			if dryRun {
				summary, err := c.app.checkout.Review(cmd.Context())
				if err != nil {
					return err
				}
				p.summary(summary)
				return nil
			}

			res, err := c.app.checkout.PlaceOrder(cmd.Context())
			if err != nil {
				return reported(err)
			}
			p.summary(res.Summary)
			p.note(fmt.Sprintf("Order #%d", res.OrderID))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the order summary without placing it")
	return cmd
}

func newOrdersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := c.app.orders.History(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(c.stdout).orders(orders)
			return nil
		},
	}
}

func newTokenCmd(c *cli) *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bearer token",
	}
	token.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store a bearer token and load the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.creds.Save(cmd.Context(), args[0]); err != nil {
				return err
			}
			snap := c.app.cart.Refresh(cmd.Context())
			c.app.notify.Success(fmt.Sprintf("Signed in. Cart has %d item(s).", snap.TotalQuantity()))
			return nil
		},
	})
	token.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Report whether a usable token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := c.app.creds.Token(cmd.Context()); ok {
				fmt.Fprintln(c.stdout, "signed in")
			} else {
				fmt.Fprintln(c.stdout, "signed out")
			}
			return nil
		},
	})
	return token
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.creds.Clear(cmd.Context()); err != nil {
				return err
			}
			c.app.cart.Reset()
			c.app.notify.Success("Signed out.")
			return nil
		},
	}
}

// resolveItem looks up the display name used in the add confirmation. A
// catalog outage falls back to a generic name rather than blocking the add.
func (c *cli) resolveItem(cmd *cobra.Command, id uint64) (cartdomain.ItemRef, error) {
	p, err := c.app.catalog.GetProduct(cmd.Context(), id)
	switch {
	case err == nil:
		return cartdomain.ItemRef{ID: p.ID, Name: p.Name}, nil
	case errors.Is(err, catalogapp.ErrNotFound):
		return cartdomain.ItemRef{}, err
	default:
		c.app.log.Warn("resolve item name", slog.Uint64("item_id", id), slog.Any("err", err))
		return cartdomain.ItemRef{ID: id, Name: fmt.Sprintf("Item #%d", id)}, nil
	}
}

func (c *cli) watchCount(on bool) (stop func()) {
	if !on {
		return func() {}
	}
	return c.app.cart.Subscribe(func(n int) {
		fmt.Fprintf(c.stdout, "cart count: %d\n", n)
	})
}

func parseItemID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, usageError{msg: fmt.Sprintf("invalid item id %q", s)}
	}
	return id, nil
}
