// Package date provides a day-granularity date value type with an
// ISO-8601 string form.
package date

import (
	"fmt"
	"time"
)

// Format is the canonical string form of a Date.
const Format = "2006-01-02"

// Date is a calendar day. The zero value is the zero time's day and
// reports IsZero.
type Date struct {
	t time.Time
}

// New returns the date for the given year, month, and day, normalized the
// way time.Date normalizes out-of-range values.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse reads a Date from its ISO-8601 form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, Format, err)
	}
	return Date{t}, nil
}

// MustParse is like Parse but panics on error. For tests and literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(Format) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.t.After(x.t) }

// Equal reports whether d and x are the same day.
func (d Date) Equal(x Date) bool { return d.t.Equal(x.t) }

// Add returns the date days later (or earlier when negative).
func (d Date) Add(days int) Date { return Date{d.t.AddDate(0, 0, days)} }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
