package forms

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// EditForm changes the salary of one cat. No other field is editable.
type EditForm struct {
	mu         sync.Mutex
	api        Updater
	onUpdated  func(models.Cat)
	logger     logging.Logger
	target     models.Cat
	salaryText string
	open       bool
	submitting bool
	err        string
}

func NewEditForm(api Updater, target models.Cat, onUpdated func(models.Cat), logger logging.Logger) *EditForm {
	if logger == nil {
		logger = logging.Discard()
	}
	return &EditForm{
		api:        api,
		onUpdated:  onUpdated,
		logger:     logger,
		target:     target,
		salaryText: models.FormatSalary(target.Salary),
		open:       true,
	}
}

func (f *EditForm) Target() models.Cat {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target
}

func (f *EditForm) SalaryText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.salaryText
}

// SetSalaryText replaces the entered salary. It is ignored while submitting.
func (f *EditForm) SetSalaryText(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return
	}
	f.salaryText = s
}

func (f *EditForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{Open: f.open, Submitting: f.submitting, Error: f.err}
}

func (f *EditForm) Submit(ctx context.Context) (models.Cat, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return models.Cat{}, ErrBusy
	}
	f.submitting = true
	f.err = ""
	id, text := f.target.ID, f.salaryText
	f.mu.Unlock()

	salary, err := models.ParseSalary(text)
	if err != nil {
		f.fail(err)
		return models.Cat{}, err
	}

	cat, err := f.api.UpdateCat(ctx, id, models.CatUpdate{Salary: salary})
	if err != nil {
		f.logger.Warn(ctx, "update cat salary failed", "id", id, "error", err)
		f.fail(err)
		return models.Cat{}, err
	}

	f.mu.Lock()
	f.submitting = false
	f.open = false
	f.target = cat
	f.salaryText = models.FormatSalary(cat.Salary)
	f.mu.Unlock()

	f.logger.Info(ctx, "cat salary updated", "id", cat.ID, "salary", cat.Salary)
	if f.onUpdated != nil {
		f.onUpdated(cat)
	}
	return cat, nil
}

func (f *EditForm) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.err = client.MessageOf(err, MsgUpdateFailed)
}

// Close dismisses the form, restoring the salary text of the target. It
// returns false while a submit is in flight.
func (f *EditForm) Close() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.open = false
	f.salaryText = models.FormatSalary(f.target.Salary)
	f.err = ""
	return true
}
