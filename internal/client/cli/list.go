package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/spycats/internal/client/roster"
)

// Load fetches the roster from the backend and renders it. Run calls it once
// on start; afterwards the roster changes only through local splices or Retry.
func (a *App) Load(ctx context.Context) error {
	return a.reload(ctx, a.roster.Load)
}

// List renders the roster as it stands, without a network call.
func (a *App) List(ctx context.Context) error {
	renderRoster(a.out, a.roster.Snapshot())
	return nil
}

// Retry re-issues the list call after a failed load.
func (a *App) Retry(ctx context.Context) error {
	return a.reload(ctx, a.roster.Retry)
}

func (a *App) reload(ctx context.Context, load func(context.Context) error) error {
	a.println("Loading spy cats...")
	err := load(ctx)
	if errors.Is(err, roster.ErrBusy) {
		a.printError("the list is already loading")
		return err
	}
	renderRoster(a.out, a.roster.Snapshot())
	return err
}
