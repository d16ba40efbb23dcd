package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/spycats/internal/client/cli"
)

// GetListCmd prints the roster once and exits.
func GetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all spy cats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Load(ctx)
			})
		},
	}
}

// GetShowCmd prints one spy cat and exits.
func GetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one spy cat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *cli.App) error {
				return app.Show(ctx, args[0])
			})
		},
	}
}
