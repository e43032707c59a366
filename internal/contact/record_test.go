package contact

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordbook/internal/field"
)

func newAlice(t *testing.T) *Record {
	t.Helper()
	r, err := New("Alice", field.MustPhone("0501234567"))
	require.NoError(t, err)
	return r
}

func phoneStrings(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNew(t *testing.T) {
	r := newAlice(t)
	assert.Equal(t, "Alice", r.Name())
	assert.Equal(t, []string{"+380501234567"}, phoneStrings(r))
	assert.False(t, r.Email().IsSet())
	assert.False(t, r.Address().IsSet())
	assert.False(t, r.Birthday().IsSet())

	_, err := New("  ", field.MustPhone("0501234567"))
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = New("Bob", field.Phone{})
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newAlice(t)

	p, err := r.AddPhone("80671112233")
	require.NoError(t, err)
	assert.Equal(t, "+380671112233", p.String())

	// same number in another accepted shape is still a duplicate
	_, err = r.AddPhone("+380671112233")
	assert.ErrorIs(t, err, ErrPhoneExists)

	assert.Equal(t, []string{"+380501234567", "+380671112233"}, phoneStrings(r))
	assert.Equal(t, "+380501234567, +380671112233", r.PhoneList())

	_, err = r.AddPhone("12345")
	assert.ErrorIs(t, err, field.ErrInvalidFormat)
	assert.Len(t, r.Phones(), 2)
}

func TestRecord_DeletePhone(t *testing.T) {
	r := newAlice(t)
	_, err := r.AddPhone("0671112233")
	require.NoError(t, err)

	_, err = r.DeletePhone("0931112233")
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	p, err := r.DeletePhone("80501234567")
	require.NoError(t, err)
	assert.Equal(t, "+380501234567", p.String())
	assert.Equal(t, []string{"+380671112233"}, phoneStrings(r))

	_, err = r.DeletePhone("0671112233")
	assert.ErrorIs(t, err, ErrLastPhone)
	assert.Len(t, r.Phones(), 1)
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		r := newAlice(t)
		_, err := r.AddPhone("0671112233")
		require.NoError(t, err)

		old, updated, err := r.EditPhone("0501234567", func() (string, error) { return " 0939998877 ", nil })
		require.NoError(t, err)
		assert.Equal(t, "+380501234567", old.String())
		assert.Equal(t, "+380939998877", updated.String())
		assert.Equal(t, []string{"+380939998877", "+380671112233"}, phoneStrings(r))
	})

	t.Run("missing phone never asks for a replacement", func(t *testing.T) {
		r := newAlice(t)
		_, _, err := r.EditPhone("0931112233", func() (string, error) {
			t.Fatal("replacement requested for a missing phone")
			return "", nil
		})
		assert.ErrorIs(t, err, ErrPhoneNotFound)
		assert.Equal(t, []string{"+380501234567"}, phoneStrings(r))
	})

	t.Run("invalid replacement leaves record unchanged", func(t *testing.T) {
		r := newAlice(t)
		_, _, err := r.EditPhone("0501234567", func() (string, error) { return "bad", nil })
		assert.ErrorIs(t, err, field.ErrInvalidFormat)
		assert.Equal(t, []string{"+380501234567"}, phoneStrings(r))
	})

	t.Run("replacement duplicating another phone is rejected", func(t *testing.T) {
		r := newAlice(t)
		_, err := r.AddPhone("0671112233")
		require.NoError(t, err)
		_, _, err = r.EditPhone("0501234567", func() (string, error) { return "+380671112233", nil })
		assert.ErrorIs(t, err, ErrPhoneExists)
		assert.Equal(t, []string{"+380501234567", "+380671112233"}, phoneStrings(r))
	})

	t.Run("prompt failure is returned", func(t *testing.T) {
		r := newAlice(t)
		boom := errors.New("input closed")
		_, _, err := r.EditPhone("0501234567", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestRecord_Setters(t *testing.T) {
	r := newAlice(t)

	b, err := r.SetBirthday("10 January 2020")
	require.NoError(t, err)
	assert.Equal(t, "10 January 2020", b.String())
	assert.Equal(t, time.January, r.Birthday().Date().Month())

	_, err = r.SetBirthday("2020-01-10")
	assert.ErrorIs(t, err, field.ErrInvalidFormat)
	assert.Equal(t, "10 January 2020", r.Birthday().String(), "failed set keeps the old value")

	_, err = r.SetEmail("alice@example.com")
	require.NoError(t, err)
	_, err = r.SetEmail("nope")
	assert.ErrorIs(t, err, field.ErrInvalidFormat)
	assert.Equal(t, "alice@example.com", r.Email().String())

	assert.Equal(t, "Kyiv", r.SetAddress(" Kyiv ").String())
	assert.Equal(t, "Kyiv", r.Address().String())
}

func TestRecord_Matches(t *testing.T) {
	r := newAlice(t)
	_, err := r.SetEmail("a.smith@example.com")
	require.NoError(t, err)
	r.SetAddress("Київ, Хрещатик 1")

	tests := []struct {
		needle string
		want   bool
	}{
		{"Ali", true},
		{"ali", false},
		{"smith", true},
		{"Smith", false},
		{"example", true},
		{"EXAMPLE", false},
		{"Хрещатик", true},
		{"хрещатик", false},
		{"1234567", true},
		{"+38050", true},
		{"Bob", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Matches(tt.needle))
		})
	}
}

func TestRecord_PhonesIsACopy(t *testing.T) {
	r := newAlice(t)
	phones := r.Phones()
	phones[0] = field.MustPhone("0939998877")
	assert.Equal(t, []string{"+380501234567"}, phoneStrings(r))
}
