package forms

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// fakeAPI records every call. When gate is set, calls signal entered and
// then wait for gate to be closed.
type fakeAPI struct {
	mu sync.Mutex

	creates []models.CatCreate
	updates []models.CatUpdate
	deletes []int64
	gets    []int64

	cat models.Cat
	err error

	entered chan struct{}
	gate    chan struct{}
}

func (f *fakeAPI) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeAPI) CreateCat(_ context.Context, c models.CatCreate) (models.Cat, error) {
	f.mu.Lock()
	f.creates = append(f.creates, c)
	f.mu.Unlock()
	f.wait()
	if f.err != nil {
		return models.Cat{}, f.err
	}
	out := f.cat
	out.Name, out.Breed, out.YearsOfExperience, out.Salary = c.Name, c.Breed, c.YearsOfExperience, c.Salary
	return out, nil
}

func (f *fakeAPI) UpdateCat(_ context.Context, id int64, u models.CatUpdate) (models.Cat, error) {
	f.mu.Lock()
	f.updates = append(f.updates, u)
	f.mu.Unlock()
	f.wait()
	if f.err != nil {
		return models.Cat{}, f.err
	}
	out := f.cat
	out.ID = id
	out.Salary = u.Salary
	return out, nil
}

func (f *fakeAPI) DeleteCat(_ context.Context, id int64) error {
	f.mu.Lock()
	f.deletes = append(f.deletes, id)
	f.mu.Unlock()
	f.wait()
	return f.err
}

func (f *fakeAPI) GetCat(_ context.Context, id int64) (models.Cat, error) {
	f.mu.Lock()
	f.gets = append(f.gets, id)
	f.mu.Unlock()
	f.wait()
	if f.err != nil {
		return models.Cat{}, f.err
	}
	out := f.cat
	out.ID = id
	return out, nil
}

func (f *fakeAPI) counts() (creates, updates, deletes, gets int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates), len(f.updates), len(f.deletes), len(f.gets)
}

func blocking() *fakeAPI {
	return &fakeAPI{entered: make(chan struct{}, 1), gate: make(chan struct{})}
}
