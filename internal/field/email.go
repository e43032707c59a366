package field

import (
	"regexp"
	"strings"
)

// Local part of at least two characters, one domain label, then a 2-3 letter
// TLD optionally followed by a 2-3 letter country code. Letters and digits
// may come from any script.
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.+\-]{2,}@[\p{L}\p{N}_]+\.[a-z]{2,3}(\.[a-z]{2,3})?$`)

// Email is a validated email address. The zero value means unset.
type Email struct {
	value string
}

// ValidEmail reports whether raw looks like user@sub.tld or user@sub.tld.cc.
func ValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

// ParseEmail validates raw and wraps it as an Email.
func ParseEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(raw)
	if !ValidEmail(raw) {
		return Email{}, invalid(KindEmail, raw, emailHint)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

func (e Email) IsSet() bool { return e.value != "" }
