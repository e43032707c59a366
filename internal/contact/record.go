// Package contact implements a single address-book record and the operations
// that mutate it.
package contact

import (
	"errors"
	"slices"
	"strings"

	"recordbook/internal/field"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNoPhone       = errors.New("record needs a phone")
	ErrPhoneExists   = errors.New("phone already recorded")
	ErrPhoneNotFound = errors.New("no such phone record")
	ErrLastPhone     = errors.New("record must keep at least one phone")
)

// Record is one contact. The name never changes after New and the record
// always holds at least one phone.
type Record struct {
	name     string
	phones   []field.Phone
	email    field.Email
	address  field.Address
	birthday field.Birthday
}

// New creates a record seeded with its first phone.
func New(name string, phone field.Phone) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone.IsZero() {
		return nil, ErrNoPhone
	}
	return &Record{name: name, phones: []field.Phone{phone}}, nil
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []field.Phone {
	return append([]field.Phone(nil), r.phones...)
}

// PhoneList joins the canonical phones with ", ".
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func (r *Record) Email() field.Email { return r.email }

func (r *Record) Address() field.Address { return r.address }

func (r *Record) Birthday() field.Birthday { return r.birthday }

func (r *Record) indexOf(p field.Phone) int {
	for i, existing := range r.phones {
		if existing == p {
			return i
		}
	}
	return -1
}

// AddPhone normalizes raw and appends it unless the record already has it.
func (r *Record) AddPhone(raw string) (field.Phone, error) {
	p, err := field.ParsePhone(raw)
	if err != nil {
		return field.Phone{}, err
	}
	if r.indexOf(p) >= 0 {
		return p, ErrPhoneExists
	}
	r.phones = append(r.phones, p)
	return p, nil
}

// DeletePhone removes the first phone equal to the normalized raw value.
func (r *Record) DeletePhone(raw string) (field.Phone, error) {
	p, err := field.ParsePhone(raw)
	if err != nil {
		return field.Phone{}, err
	}
	i := r.indexOf(p)
	if i < 0 {
		return p, ErrPhoneNotFound
	}
	if len(r.phones) == 1 {
		return p, ErrLastPhone
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return p, nil
}

// EditPhone replaces the phone equal to the normalized oldRaw with the value
// returned by next. next is only called once the old phone is found, so a
// missing phone never prompts for a replacement.
func (r *Record) EditPhone(oldRaw string, next func() (string, error)) (old, updated field.Phone, err error) {
	old, err = field.ParsePhone(oldRaw)
	if err != nil {
		return field.Phone{}, field.Phone{}, err
	}
	i := r.indexOf(old)
	if i < 0 {
		return old, field.Phone{}, ErrPhoneNotFound
	}

	raw, err := next()
	if err != nil {
		return old, field.Phone{}, err
	}
	updated, err = field.ParsePhone(strings.TrimSpace(raw))
	if err != nil {
		return old, field.Phone{}, err
	}
	if j := r.indexOf(updated); j >= 0 && j != i {
		return old, updated, ErrPhoneExists
	}

	r.phones[i] = updated
	return old, updated, nil
}

// SetBirthday parses raw and overwrites the birthday.
func (r *Record) SetBirthday(raw string) (field.Birthday, error) {
	b, err := field.ParseBirthday(raw)
	if err != nil {
		return field.Birthday{}, err
	}
	r.birthday = b
	return b, nil
}

// SetEmail validates raw and overwrites the email.
func (r *Record) SetEmail(raw string) (field.Email, error) {
	e, err := field.ParseEmail(raw)
	if err != nil {
		return field.Email{}, err
	}
	r.email = e
	return e, nil
}

// SetAddress overwrites the address. Any text is accepted.
func (r *Record) SetAddress(raw string) field.Address {
	r.address = field.ParseAddress(raw)
	return r.address
}

// Matches reports whether needle occurs verbatim in the name, email, address or
// any canonical phone. Matching is case-sensitive on every field.
func (r *Record) Matches(needle string) bool {
	if needle == "" {
		return false
	}
	for _, s := range []string{r.name, r.email.String(), r.address.String()} {
		if strings.Contains(s, needle) {
			return true
		}
	}
	for _, p := range r.phones {
		if strings.Contains(p.String(), needle) {
			return true
		}
	}
	return false
}
