package forms

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// DeleteConfirm asks before deleting a cat. Only Confirm touches the network.
type DeleteConfirm struct {
	mu         sync.Mutex
	api        Deleter
	onDeleted  func(id int64)
	logger     logging.Logger
	target     models.Cat
	open       bool
	submitting bool
	err        string
}

func NewDeleteConfirm(api Deleter, target models.Cat, onDeleted func(id int64), logger logging.Logger) *DeleteConfirm {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DeleteConfirm{api: api, onDeleted: onDeleted, logger: logger, target: target, open: true}
}

// Prompt returns the confirmation question naming the target.
func (d *DeleteConfirm) Prompt() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", d.target.Name)
}

func (d *DeleteConfirm) Target() models.Cat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.target
}

func (d *DeleteConfirm) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{Open: d.open, Submitting: d.submitting, Error: d.err}
}

func (d *DeleteConfirm) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return ErrBusy
	}
	d.submitting = true
	d.err = ""
	id := d.target.ID
	d.mu.Unlock()

	err := d.api.DeleteCat(ctx, id)

	d.mu.Lock()
	d.submitting = false
	if err != nil {
		d.err = client.MessageOf(err, MsgDeleteFailed)
		d.mu.Unlock()
		d.logger.Warn(ctx, "delete cat failed", "id", id, "error", err)
		return err
	}
	d.open = false
	d.mu.Unlock()

	d.logger.Info(ctx, "cat deleted", "id", id)
	if d.onDeleted != nil {
		d.onDeleted(id)
	}
	return nil
}

// Cancel dismisses the dialog. It returns false while the delete is in flight.
func (d *DeleteConfirm) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return false
	}
	d.open = false
	d.err = ""
	return true
}
