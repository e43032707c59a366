package book

import (
	"context"
	"errors"
	"fmt"

	"recordbook/internal/contact"
	"recordbook/internal/field"
)

// ErrCorrupt marks storage that exists but cannot be decoded. Load treats it as
// an empty book.
var ErrCorrupt = errors.New("storage is corrupt")

// Entry is the persisted form of one record.
type Entry struct {
	Name     string   `json:"name"`
	Phones   []string `json:"Phone number"`
	Birthday string   `json:"Date of birth"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
}

// Backend reads and writes the whole book at once. Save always overwrites
// everything previously stored.
type Backend interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
	Close() error
}

func entryOf(r *contact.Record) Entry {
	phones := r.Phones()
	e := Entry{
		Name:     r.Name(),
		Phones:   make([]string, len(phones)),
		Birthday: r.Birthday().String(),
		Email:    r.Email().String(),
		Address:  r.Address().String(),
	}
	for i, p := range phones {
		e.Phones[i] = p.String()
	}
	return e
}

// record rebuilds a Record through the same operations the commands use: the
// first phone seeds it and the rest are appended.
func (e Entry) record() (*contact.Record, error) {
	if len(e.Phones) == 0 {
		return nil, contact.ErrNoPhone
	}
	first, err := field.ParsePhone(e.Phones[0])
	if err != nil {
		return nil, fmt.Errorf("phone %q: %w", e.Phones[0], err)
	}
	r, err := contact.New(e.Name, first)
	if err != nil {
		return nil, err
	}
	for _, raw := range e.Phones[1:] {
		if _, err := r.AddPhone(raw); err != nil && !errors.Is(err, contact.ErrPhoneExists) {
			return nil, fmt.Errorf("phone %q: %w", raw, err)
		}
	}
	if e.Birthday != "" {
		if _, err := r.SetBirthday(e.Birthday); err != nil {
			return nil, fmt.Errorf("birthday %q: %w", e.Birthday, err)
		}
	}
	if e.Email != "" {
		if _, err := r.SetEmail(e.Email); err != nil {
			return nil, fmt.Errorf("email %q: %w", e.Email, err)
		}
	}
	if e.Address != "" {
		r.SetAddress(e.Address)
	}
	return r, nil
}
