// Package roster holds the client's in-memory copy of the spy cat list and
// keeps it in sync with the results of successful API calls.
package roster

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

// MsgLoadFailed is shown when a list load fails without a server message.
const MsgLoadFailed = "Failed to load spy cats"

var ErrBusy = errors.New("roster: load already in progress")

// Lister is the part of client.Client the roster needs.
type Lister interface {
	ListCats(ctx context.Context) (models.CatList, error)
}

// Snapshot is a consistent copy of the roster state.
type Snapshot struct {
	Cats    []models.Cat
	Loading bool
	Error   string
}

type Roster struct {
	mu      sync.Mutex
	api     Lister
	logger  logging.Logger
	cats    []models.Cat
	loading bool
	err     string
}

func New(api Lister, logger logging.Logger) *Roster {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Roster{api: api, logger: logger, cats: []models.Cat{}}
}

// Load fetches the full list and replaces the collection with it. On failure
// the previous collection is kept and the error message is recorded.
func (r *Roster) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.loading {
		r.mu.Unlock()
		return ErrBusy
	}
	r.loading = true
	r.err = ""
	r.mu.Unlock()

	list, err := r.api.ListCats(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false

	if err != nil {
		r.err = client.MessageOf(err, MsgLoadFailed)
		r.logger.Warn(ctx, "failed to load spy cats", "error", err)
		return err
	}

	r.cats = append(make([]models.Cat, 0, len(list.Cats)), list.Cats...)
	r.logger.Debug(ctx, "spy cats loaded", "count", len(list.Cats), "total", list.Total)
	return nil
}

// Retry re-issues the list call after a failed load.
func (r *Roster) Retry(ctx context.Context) error {
	return r.Load(ctx)
}

// Insert puts a newly created cat at the front of the list.
func (r *Roster) Insert(cat models.Cat) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats := make([]models.Cat, 0, len(r.cats)+1)
	cats = append(cats, cat)
	r.cats = append(cats, r.cats...)
}

// Replace overwrites the entry with cat.ID in place. Unknown IDs are ignored.
func (r *Roster) Replace(cat models.Cat) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cats {
		if r.cats[i].ID == cat.ID {
			r.cats[i] = cat
			return
		}
	}
}

// Remove drops the entry with the given id. Unknown IDs are ignored.
func (r *Roster) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cats {
		if r.cats[i].ID == id {
			r.cats = append(r.cats[:i:i], r.cats[i+1:]...)
			return
		}
	}
}

func (r *Roster) Cats() []models.Cat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Cat(nil), r.cats...)
}

func (r *Roster) Find(id int64) (models.Cat, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cats {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cat{}, false
}

func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cats)
}

func (r *Roster) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Cats:    append([]models.Cat{}, r.cats...),
		Loading: r.loading,
		Error:   r.err,
	}
}
