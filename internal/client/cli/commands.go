package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/client/client"
	"github.com/dmitrijs2005/beerkeeper/internal/client/models"
	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command. Multiple words are joined
// with single spaces, so `beerctl create Pale Ale` stores "Pale Ale".
func NewCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a beer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return opts.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				b, err := c.CreateBeer(ctx, name)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Beers([]models.Beer{*b})
			})
		},
	}
}

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all beers in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				list, err := c.GetBeers(ctx)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Beers(list)
			})
		},
	}
}

func NewCountCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of beers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				n, err := c.GetBeerCount(ctx)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Count(n)
			})
		},
	}
}

// NewHealthCommand creates the health command, which calls Ping and the
// standard gRPC health service.
func NewHealthCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				if err := c.Ping(ctx); err != nil {
					return err
				}
				s, err := c.Health(ctx)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Health(models.Health{Ping: common.StatusOK, Service: s, Time: time.Now().UTC()})
			})
		},
	}
}
