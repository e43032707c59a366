package field

import "strings"

// Address is free-form text. The zero value means unset.
type Address struct {
	value string
}

// ParseAddress accepts any text; only surrounding whitespace is dropped.
func ParseAddress(raw string) Address {
	return Address{value: strings.TrimSpace(raw)}
}

func (a Address) String() string { return a.value }

func (a Address) IsSet() bool { return a.value != "" }
