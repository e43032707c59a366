// Package field holds the validated value types stored in a contact record.
// Every kind has its own parse function and a String method producing the
// persisted form; none of them share a base type.
package field

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the sentinel behind every rejected field value.
var ErrInvalidFormat = errors.New("invalid format")

// Kind names a field for messages and logs.
type Kind string

const (
	KindPhone    Kind = "phone"
	KindEmail    Kind = "email"
	KindBirthday Kind = "birthday"
)

// User-facing guidance for each rejected kind.
const (
	phoneHint    = "Number format is not correct! Must contain 10-13 symbols and must match the one of the current formats: +380001112233 or 80001112233 or 0001112233!"
	emailHint    = `The email address is not valid! Must contain min 2 characters before "@" and 2-3 symbols in TLD! Example: aa@example.net or aa@example.com.ua`
	birthdayHint = `Your data format is not correct! Please use this one: "10 January 2020"`
)

// FormatError reports a raw input that does not fit its field kind.
// Error returns the guidance shown to the user.
type FormatError struct {
	Kind  Kind
	Input string
	Hint  string
}

func (e *FormatError) Error() string { return e.Hint }

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// Detail describes the failure for logs, including the rejected input.
func (e *FormatError) Detail() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Input, ErrInvalidFormat)
}

func invalid(kind Kind, input, hint string) error {
	return &FormatError{Kind: kind, Input: input, Hint: hint}
}
