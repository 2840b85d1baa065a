package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli carries flag values and the wired app across cobra hooks.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	apiURL    string
	statePath string
	logLevel  string

	started bool
	app     *app
	cancel  context.CancelFunc
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	code, kind, msg, show := exitStatusFor(err)

	if err != nil && c.app == nil {
		if !c.started {
			// cobra rejected the command line before any hook ran.
			code = exitUsage
		}
		fmt.Fprintln(stderr, err)
		return code
	}
	if err != nil {
		c.app.log.Debug("command failed", slog.String("kind", kind), slog.Any("err", err))
		if show {
			c.app.notify.Error(msg)
		}
	}
	c.close()
	return code
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.app.Close(ctx)
	if c.cancel != nil {
		c.cancel()
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the shop, manage your cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.started = true
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api") {
				cfg.APIURL = c.apiURL
			}
			if cmd.Flags().Changed("state") {
				cfg.StatePath = c.statePath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = c.logLevel
			}

			ctx, cancel := shutdown.WithSignals(cmd.Context())
			a, err := newApp(ctx, cfg, c.stdout, c.stderr)
			if err != nil {
				cancel()
				return err
			}
			c.app, c.cancel = a, cancel
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "backend base URL (overrides STOREFRONT_API_URL)")
	root.PersistentFlags().StringVar(&c.statePath, "state", "", "local storage file (overrides STOREFRONT_STATE_PATH)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error (overrides STOREFRONT_LOG_LEVEL)")

	root.AddCommand(
		newShopCmd(c),
		newCatalogCmd(c),
		newCartCmd(c),
		newCheckoutCmd(c),
		newOrdersCmd(c),
		newTokenCmd(c),
		newLogoutCmd(c),
	)
	return root
}
