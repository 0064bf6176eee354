package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/client/client"
	"github.com/dmitrijs2005/beerkeeper/internal/client/config"
	"github.com/spf13/cobra"
)

// ClientFactory connects to the server at addr.
type ClientFactory func(addr string) (client.Client, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Addr       string
	Timeout    time.Duration
	JSON       bool

	config    *config.Config
	newClient ClientFactory
}

// DefaultClientFactory dials the server over gRPC.
func DefaultClientFactory(addr string) (client.Client, error) {
	return client.NewBeerClient(addr)
}

// NewRootCommand creates the beerctl root command.
func NewRootCommand(factory ClientFactory) *cobra.Command {
	opts := &RootOptions{newClient: factory}

	cmd := &cobra.Command{
		Use:           "beerctl",
		Short:         "beerctl - BeerKeeper command-line client",
		Long:          "Create beers and query the list and count kept by a BeerKeeper server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Addr, "addr", "a", "", "server gRPC address (default from config)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-call timeout (default from config)")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "always print JSON")

	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewHealthCommand(opts))

	return cmd
}

// resolve loads the config file and lets explicitly set flags override it.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("addr") {
		cfg.ServerEndpointAddr = o.Addr
	}
	if cmd.Flags().Changed("timeout") {
		if o.Timeout <= 0 {
			return fmt.Errorf("invalid timeout %s: must be positive", o.Timeout)
		}
		cfg.RequestTimeout = o.Timeout
	}

	o.config = cfg
	return nil
}

// withClient connects, runs fn under the request timeout and closes the
// connection.
func (o *RootOptions) withClient(ctx context.Context, fn func(ctx context.Context, c client.Client) error) error {
	c, err := o.newClient(o.config.ServerEndpointAddr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", o.config.ServerEndpointAddr, err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(ctx, o.config.RequestTimeout)
	defer cancel()

	return fn(ctx, c)
}
