package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kitty = models.Cat{ID: 5, Name: "Kitty", Breed: "Siamese", YearsOfExperience: 2, Salary: 1200.5}

func TestEditForm_InitialText(t *testing.T) {
	f := NewEditForm(&fakeAPI{}, kitty, nil, nil)
	assert.Equal(t, "1200.5", f.SalaryText())
	assert.True(t, f.State().Open)
}

func TestEditForm_SuccessReplaces(t *testing.T) {
	api := &fakeAPI{cat: kitty}
	var replaced []models.Cat
	f := NewEditForm(api, kitty, func(c models.Cat) { replaced = append(replaced, c) }, nil)

	f.SetSalaryText(" 2000 ")
	cat, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Equal(t, []models.CatUpdate{{Salary: 2000}}, api.updates)
	assert.Equal(t, 2000.0, cat.Salary)
	require.Len(t, replaced, 1)
	assert.Equal(t, int64(5), replaced[0].ID)
	assert.Equal(t, "Kitty", replaced[0].Name)

	assert.False(t, f.State().Open)
	assert.Equal(t, "2000", f.SalaryText())
	assert.Equal(t, 2000.0, f.Target().Salary)
}

func TestEditForm_InvalidSalaryBlocksNetwork(t *testing.T) {
	for _, text := range []string{"", "abc", "0", "-10", "NaN", "Inf"} {
		api := &fakeAPI{}
		called := false
		f := NewEditForm(api, kitty, func(models.Cat) { called = true }, nil)
		f.SetSalaryText(text)

		_, err := f.Submit(context.Background())
		require.Error(t, err, text)

		_, updates, _, _ := api.counts()
		assert.Zero(t, updates, text)
		assert.False(t, called)
		assert.Equal(t, models.MsgSalaryInvalid, f.State().Error, text)
		assert.True(t, f.State().Open)
		assert.Equal(t, text, f.SalaryText())
	}
}

func TestEditForm_ServerFailure(t *testing.T) {
	api := &fakeAPI{err: &client.APIError{Status: 404, Message: "Cat with id 5 not found"}}
	f := NewEditForm(api, kitty, nil, nil)
	f.SetSalaryText("3000")

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	s := f.State()
	assert.Equal(t, "Cat with id 5 not found", s.Error)
	assert.True(t, s.Open)
	assert.Equal(t, "3000", f.SalaryText())
	assert.Equal(t, kitty, f.Target())

	api.err = errors.New("boom")
	_, _ = f.Submit(context.Background())
	assert.Equal(t, MsgUpdateFailed, f.State().Error)
}

func TestEditForm_CloseRestoresText(t *testing.T) {
	f := NewEditForm(&fakeAPI{}, kitty, nil, nil)
	f.SetSalaryText("abc")
	_, _ = f.Submit(context.Background())

	require.True(t, f.Close())
	assert.Equal(t, "1200.5", f.SalaryText())
	assert.Equal(t, State{}, f.State())
}

func TestEditForm_InFlightGuards(t *testing.T) {
	api := blocking()
	api.cat = kitty
	f := NewEditForm(api, kitty, nil, nil)
	f.SetSalaryText("1300")

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-api.entered

	assert.False(t, f.Close())
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	f.SetSalaryText("9999")
	assert.Equal(t, "1300", f.SalaryText())

	close(api.gate)
	require.NoError(t, <-done)
	_, updates, _, _ := api.counts()
	assert.Equal(t, 1, updates)
}
