package devserver

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CRUD(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a := s.Create(Cat{Name: "Tom", Breed: "Persian", Salary: 10})
	b := s.Create(Cat{Name: "Kitty", Breed: "Siamese", Salary: 20})
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, fixed, a.CreatedAt)

	got, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Kitty", got.Name)

	later := fixed.Add(time.Hour)
	s.now = func() time.Time { return later }
	upd, err := s.UpdateSalary(1, 99)
	require.NoError(t, err)
	assert.Equal(t, 99.0, upd.Salary)
	assert.Equal(t, fixed, upd.CreatedAt)
	assert.Equal(t, later, upd.UpdatedAt)

	require.NoError(t, s.Delete(1))
	_, err = s.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(1), ErrNotFound)
	_, err = s.UpdateSalary(1, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	c := s.Create(Cat{Name: "Felix"})
	assert.Equal(t, int64(3), c.ID, "ids are never reused")
}

func TestStore_ListPaging(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Create(Cat{Name: "c"})
	}

	cats, total := s.List(0, 100)
	assert.Equal(t, 5, total)
	require.Len(t, cats, 5)
	assert.Equal(t, int64(1), cats[0].ID)
	assert.Equal(t, int64(5), cats[4].ID)

	cats, total = s.List(3, 1)
	assert.Equal(t, 5, total)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(4), cats[0].ID)

	cats, _ = s.List(10, 5)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestStore_ConcurrentCreate(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Create(Cat{Name: "x"})
		}()
	}
	wg.Wait()

	_, total := s.List(0, 100)
	assert.Equal(t, 20, total)
}

func TestSeed(t *testing.T) {
	s := NewStore()
	Seed(s)
	cats, total := s.List(0, 100)
	assert.Equal(t, 3, total)
	assert.Equal(t, "Whiskers", cats[0].Name)
}
