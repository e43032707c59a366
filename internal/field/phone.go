package field

import "strings"

// Phone is a phone number in canonical +380XXXXXXXXX form.
type Phone struct {
	value string
}

// CanonicalPhoneLen is the length of every canonical phone.
const CanonicalPhoneLen = 13

// ValidPhone reports whether raw is 10 to 13 characters long and consists of
// digits after an optional single leading '+'.
func ValidPhone(raw string) bool {
	if len(raw) < 10 || len(raw) > CanonicalPhoneLen {
		return false
	}
	for _, r := range strings.TrimPrefix(raw, "+") {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParsePhone normalizes one of the accepted shapes into a canonical Phone:
//
//	+380XXXXXXXXX  (13 chars, kept as is)
//	80XXXXXXXXX    (11 chars, "+3" prepended)
//	0XXXXXXXXX     (10 chars, "+38" prepended)
func ParsePhone(raw string) (Phone, error) {
	if !ValidPhone(raw) {
		return Phone{}, invalid(KindPhone, raw, phoneHint)
	}

	switch {
	case strings.HasPrefix(raw, "+380") && len(raw) == 13:
		return Phone{value: raw}, nil
	case strings.HasPrefix(raw, "80") && len(raw) == 11:
		return Phone{value: "+3" + raw}, nil
	case strings.HasPrefix(raw, "0") && len(raw) == 10:
		return Phone{value: "+38" + raw}, nil
	default:
		return Phone{}, invalid(KindPhone, raw, phoneHint)
	}
}

// MustPhone is ParsePhone that panics on error. Use only in tests.
func MustPhone(raw string) Phone {
	p, err := ParsePhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Phone) String() string { return p.value }

func (p Phone) IsZero() bool { return p.value == "" }
