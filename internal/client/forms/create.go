package forms

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// CreateForm collects a new cat and submits it.
type CreateForm struct {
	mu         sync.Mutex
	api        Creator
	onCreated  func(models.Cat)
	logger     logging.Logger
	draft      models.CatCreate
	open       bool
	submitting bool
	err        string
}

// NewCreateForm returns a closed form. onCreated receives the cat returned by
// the server after a successful submit.
func NewCreateForm(api Creator, onCreated func(models.Cat), logger logging.Logger) *CreateForm {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CreateForm{api: api, onCreated: onCreated, logger: logger}
}

func (f *CreateForm) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// SetDraft replaces the entered values. It is ignored while submitting.
func (f *CreateForm) SetDraft(d models.CatCreate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return
	}
	f.draft = d
}

func (f *CreateForm) Draft() models.CatCreate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *CreateForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{Open: f.open, Submitting: f.submitting, Error: f.err}
}

// Submit validates the draft and creates the cat. Validation failures never
// reach the network. On failure the form stays open with the values as entered.
func (f *CreateForm) Submit(ctx context.Context) (models.Cat, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return models.Cat{}, ErrBusy
	}
	f.submitting = true
	f.err = ""
	draft := f.draft
	f.mu.Unlock()

	if err := draft.Validate(); err != nil {
		f.fail(err)
		return models.Cat{}, err
	}

	cat, err := f.api.CreateCat(ctx, draft.Canonical())
	if err != nil {
		f.logger.Warn(ctx, "create cat failed", "name", draft.Name, "error", err)
		f.fail(err)
		return models.Cat{}, err
	}

	f.mu.Lock()
	f.submitting = false
	f.open = false
	f.draft = models.CatCreate{}
	f.mu.Unlock()

	f.logger.Info(ctx, "cat created", "id", cat.ID, "name", cat.Name)
	if f.onCreated != nil {
		f.onCreated(cat)
	}
	return cat, nil
}

func (f *CreateForm) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.err = client.MessageOf(err, MsgCreateFailed)
}

// Close dismisses the form and discards the draft. It returns false, leaving
// the form untouched, while a submit is in flight.
func (f *CreateForm) Close() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.open = false
	f.draft = models.CatCreate{}
	f.err = ""
	return true
}
