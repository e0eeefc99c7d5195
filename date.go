package todotxt

import (
	"fmt"
	"time"
)

// Date is a civil calendar date without a time of day, as written in a
// todo.txt line: four digits, a dash, two digits, a dash, two digits.
//
// Dates are comparable values; two Dates constructed for the same calendar
// day are equal under ==.
type Date struct {
	t time.Time
}

// NewDate constructs the given calendar date. It reports ok=false when the
// combination does not exist in the civil calendar (2023-02-30, a 13th
// month, and so on).
func NewDate(year int, month time.Month, day int) (Date, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a round trip
	// detects dates that do not exist.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{t: t}, true
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

// String renders the date in its canonical 10-character form, e.g.
// "2021-02-01". Parsing that form yields the identical date back.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// MarshalJSON encodes the date as its canonical string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// parseDate consumes a fixed-width YYYY-MM-DD token from the head of s.
// A token of the wrong shape, or one naming a day that does not exist in
// the civil calendar, is a non-match; the caller falls through to its next
// grammar alternative.
func parseDate(s string) (d Date, rest string, ok bool) {
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, s, false
	}
	year, ok := parseDigits(s[0:4])
	if !ok {
		return Date{}, s, false
	}
	month, ok := parseDigits(s[5:7])
	if !ok {
		return Date{}, s, false
	}
	day, ok := parseDigits(s[8:10])
	if !ok {
		return Date{}, s, false
	}
	d, ok = NewDate(year, time.Month(month), day)
	if !ok {
		return Date{}, s, false
	}
	return d, s[10:], true
}

// parseDigits decodes a run of ASCII digits. Unlike strconv.Atoi it
// rejects signs and any non-digit byte.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
