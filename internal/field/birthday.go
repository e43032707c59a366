package field

import (
	"strings"
	"time"
)

const (
	// birthdayLayout accepts one- or two-digit days; month names match case-insensitively.
	birthdayLayout = "2 January 2006"

	// BirthdayFormat is the persisted and displayed form, e.g. "05 January 2020".
	BirthdayFormat = "02 January 2006"
)

// Birthday is a calendar date without a time of day.
// The zero value is the explicit unset state.
type Birthday struct {
	date time.Time
	set  bool
}

// ParseBirthday parses "<day> <FullMonthName> <year>", e.g. "10 January 2020".
func ParseBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(birthdayLayout, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, invalid(KindBirthday, raw, birthdayHint)
	}
	return Birthday{date: t, set: true}, nil
}

// NewBirthday builds a Birthday from its parts.
func NewBirthday(year int, month time.Month, day int) Birthday {
	return Birthday{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

func (b Birthday) IsSet() bool { return b.set }

// Date returns the stored date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// String returns the formatted date, or "" when unset.
func (b Birthday) String() string {
	if !b.set {
		return ""
	}
	return b.date.Format(BirthdayFormat)
}

// DaysUntil is DaysUntilNextBirthday for this birthday. It returns -1 when unset.
func (b Birthday) DaysUntil(today time.Time) int {
	if !b.set {
		return -1
	}
	return DaysUntilNextBirthday(b.date, today)
}

// DaysUntilNextBirthday counts calendar days from today to the next occurrence
// of date's month and day, today included. The result is always in [0, 365].
// A February 29 birthday is observed on February 28 in non-leap years.
func DaysUntilNextBirthday(date, today time.Time) int {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	next := occurrence(y, date.Month(), date.Day())
	if next.Before(start) {
		next = occurrence(y+1, date.Month(), date.Day())
	}
	return int(next.Sub(start).Hours() / 24)
}

func occurrence(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
