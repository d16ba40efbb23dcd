package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/spycats/internal/client/cli"
	"github.com/dmitrijs2005/spycats/internal/client/config"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// rootCmd starts the interactive client.
var rootCmd = &cobra.Command{
	Use:          "spycats",
	Short:        "Spy cats agency client",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			app.Run(ctx)
			return nil
		})
	},
}

// withApp loads configuration from the command flags, builds the App and
// runs fn with it.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *cli.App) error) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := cmd.Context()

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close app", "error", err)
		}
	}()

	return fn(ctx, app)
}

func main() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(GetListCmd(), GetShowCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
