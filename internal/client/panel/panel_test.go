package panel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	p := New("m1", "user")
	assert.Equal(t, ModalNone, p.Modal())
	assert.Equal(t, 10, p.Amount())
}

func TestSetAmount_Clamps(t *testing.T) {
	p := New("m1", "user")
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 500: 500, 1000: 1000, 1001: 1000}
	for in, want := range cases {
		assert.Equal(t, want, p.SetAmount(in), "SetAmount(%d)", in)
		assert.Equal(t, want, p.Amount())
	}
}

func TestModal_AtMostOneOpen(t *testing.T) {
	p := New("m1", "user")

	p.OpenConfirmDelete()
	assert.Equal(t, ModalConfirmingDelete, p.Modal())

	p.OpenAddProperty()
	assert.Equal(t, ModalAddingProperty, p.Modal())

	p.Close()
	assert.Equal(t, ModalNone, p.Modal())
	assert.Equal(t, "none", p.Modal().String())
}

func TestConfirmDelete(t *testing.T) {
	p := New("m1", "user")
	var deleted string
	del := func(id string) error {
		deleted = id
		return nil
	}

	assert.ErrorIs(t, p.ConfirmDelete(del), ErrNoDialog)
	assert.Empty(t, deleted)

	p.OpenConfirmDelete()
	require.NoError(t, p.ConfirmDelete(del))
	assert.Equal(t, "m1", deleted)
	assert.Equal(t, ModalNone, p.Modal())
}

func TestConfirmDelete_WrongDialog(t *testing.T) {
	p := New("m1", "user")
	p.OpenAddProperty()
	err := p.ConfirmDelete(func(string) error {
		t.Error("delete must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrNoDialog)
	assert.Equal(t, ModalAddingProperty, p.Modal())
}

func TestSubmitProperty(t *testing.T) {
	p := New("m1", "user")
	var got [2]string
	add := func(modelID, name string) error {
		got = [2]string{modelID, name}
		return nil
	}

	assert.ErrorIs(t, p.SubmitProperty("email", add), ErrNoDialog)

	p.OpenAddProperty()
	assert.ErrorIs(t, p.SubmitProperty("", add), ErrEmptyPropName)
	assert.Equal(t, ModalAddingProperty, p.Modal(), "blank submit keeps dialog open")

	require.NoError(t, p.SubmitProperty("email", add))
	assert.Equal(t, [2]string{"m1", "email"}, got)
	assert.Equal(t, ModalNone, p.Modal())
}

func TestSubmitProperty_PropagatesError(t *testing.T) {
	p := New("m1", "user")
	p.OpenAddProperty()
	wantErr := errors.New("duplicate")
	err := p.SubmitProperty("email", func(string, string) error { return wantErr })
	assert.Equal(t, wantErr, err)
}
