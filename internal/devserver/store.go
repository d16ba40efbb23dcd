package devserver

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrNotFound = errors.New("cat not found")

// Cat is the stored representation of a spy cat.
type Cat struct {
	ID                int64
	Name              string
	YearsOfExperience int
	Breed             string
	Salary            float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Store keeps cats in memory. IDs grow monotonically and are never reused.
type Store struct {
	mu     sync.RWMutex
	byID   map[int64]Cat
	nextID int64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]Cat), now: func() time.Time { return time.Now().UTC() }}
}

// List returns up to limit cats ordered by id, skipping the first skip, and
// the total number of cats.
func (s *Store) List(skip, limit int) ([]Cat, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Cat, 0, len(s.byID))
	for _, c := range s.byID {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	if skip >= total {
		return []Cat{}, total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return all[skip:end], total
}

func (s *Store) Get(id int64) (Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	return c, nil
}

// Create stores c under a new id and returns the stored cat.
func (s *Store) Create(c Cat) Cat {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	c.ID = s.nextID
	c.CreatedAt = now
	c.UpdatedAt = now
	s.byID[c.ID] = c
	return c
}

func (s *Store) UpdateSalary(id int64, salary float64) (Cat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	c.Salary = salary
	c.UpdatedAt = s.now()
	s.byID[id] = c
	return c, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
