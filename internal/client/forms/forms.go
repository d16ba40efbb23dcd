// Package forms implements the interactive workflows of the client: creating
// a cat, editing its salary, confirming a deletion and viewing details.
//
// Every form owns one error slot and a submitting flag. While a request is in
// flight the form cannot be dismissed and a second submit is rejected with
// ErrBusy. Results reach the roster only through the success hooks passed to
// the constructors, after the call has completed.
package forms

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// Fallback messages used when a failure carries no usable text.
const (
	MsgCreateFailed  = "Failed to create cat"
	MsgUpdateFailed  = "Failed to update cat salary"
	MsgDeleteFailed  = "Failed to delete cat"
	MsgDetailsFailed = "Failed to load cat details"
)

var ErrBusy = errors.New("forms: request already in progress")

type Creator interface {
	CreateCat(ctx context.Context, cat models.CatCreate) (models.Cat, error)
}

type Updater interface {
	UpdateCat(ctx context.Context, id int64, upd models.CatUpdate) (models.Cat, error)
}

type Deleter interface {
	DeleteCat(ctx context.Context, id int64) error
}

type Getter interface {
	GetCat(ctx context.Context, id int64) (models.Cat, error)
}

// State is the visible status of a form.
type State struct {
	Open       bool
	Submitting bool
	Error      string
}
