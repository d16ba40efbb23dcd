package forms

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// DetailsView shows one cat fetched fresh from the server on every open.
type DetailsView struct {
	mu      sync.Mutex
	api     Getter
	logger  logging.Logger
	cat     *models.Cat
	open    bool
	loading bool
	err     string

	// gen is bumped by Close so that a fetch settling afterwards is dropped.
	gen uint64
}

// DetailsState is the visible status of a DetailsView.
type DetailsState struct {
	Open    bool
	Loading bool
	Cat     *models.Cat
	Error   string
}

func NewDetailsView(api Getter, logger logging.Logger) *DetailsView {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DetailsView{api: api, logger: logger}
}

// Open shows the view for id and fetches the cat. An id <= 0 opens the view
// with nothing to show and makes no request.
func (v *DetailsView) Open(ctx context.Context, id int64) error {
	v.mu.Lock()
	if v.loading {
		v.mu.Unlock()
		return ErrBusy
	}
	v.open = true
	v.cat = nil
	v.err = ""
	if id <= 0 {
		v.mu.Unlock()
		return nil
	}
	v.loading = true
	gen := v.gen
	v.mu.Unlock()

	cat, err := v.api.GetCat(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if gen != v.gen {
		v.logger.Debug(ctx, "discarding details result after close", "id", id)
		return nil
	}
	if err != nil {
		v.err = client.MessageOf(err, MsgDetailsFailed)
		v.logger.Warn(ctx, "load cat details failed", "id", id, "error", err)
		return err
	}
	v.cat = &cat
	return nil
}

// Close hides the view and forgets the loaded cat.
func (v *DetailsView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = false
	v.cat = nil
	v.err = ""
	v.gen++
}

func (v *DetailsView) State() DetailsState {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := DetailsState{Open: v.open, Loading: v.loading, Error: v.err}
	if v.cat != nil {
		c := *v.cat
		s.Cat = &c
	}
	return s
}
