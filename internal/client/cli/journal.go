package cli

import (
	"context"
	"errors"
	"strconv"
)

var errJournalDisabled = errors.New("call journal is disabled")

// History prints the newest entries of the call journal.
func (a *App) History(ctx context.Context, arg string) error {
	if a.journal == nil {
		a.printError(errJournalDisabled.Error())
		return errJournalDisabled
	}

	n := defaultHistoryRows
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v <= 0 {
			a.println("Usage: history [n]")
			return errors.New("invalid row count")
		}
		n = v
	}

	recs, err := a.journal.Recent(ctx, n)
	if err != nil {
		a.logger.Error(ctx, "read call journal", "error", err)
		a.printError("failed to read call journal")
		return err
	}
	renderHistory(a.out, recs)
	return nil
}

// Stats prints per-operation latency statistics of this session.
func (a *App) Stats(ctx context.Context) error {
	if a.monitor == nil {
		renderStats(a.out, nil)
		return nil
	}
	renderStats(a.out, a.monitor.Stats())
	return nil
}
