package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/spycats/internal/devserver"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

const (
	FlagAddr        = "addr"
	FlagLogLevel    = "log-level"
	FlagSeed        = "seed"
	FlagCheckBreeds = "check-breeds"
)

// GetRootCmd returns the development backend command.
func GetRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "devserver",
		Short:        "In-memory spy cats backend for local development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := cmd.Flags().GetString(FlagAddr)
			if err != nil {
				return err
			}
			level, err := cmd.Flags().GetString(FlagLogLevel)
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetBool(FlagSeed)
			if err != nil {
				return err
			}
			checkBreeds, err := cmd.Flags().GetBool(FlagCheckBreeds)
			if err != nil {
				return err
			}

			logger := logging.New(os.Stderr, level, "text")
			store := devserver.NewStore()
			if seed {
				devserver.Seed(store)
			}
			opts := devserver.Options{Store: store, Logger: logger}
			if checkBreeds {
				opts.Breeds = devserver.DefaultBreeds
			}

			return serve(cmd.Context(), addr, devserver.NewRouter(opts), logger)
		},
	}
	cmd.Flags().String(FlagAddr, ":8000", "listen address")
	cmd.Flags().String(FlagLogLevel, "info", "log level: debug|info|warn|error")
	cmd.Flags().Bool(FlagSeed, false, "preload sample cats")
	cmd.Flags().Bool(FlagCheckBreeds, true, "reject breeds outside the built-in catalogue")

	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler, logger logging.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting devserver", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down devserver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := GetRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("devserver: %v", err)
	}
}
