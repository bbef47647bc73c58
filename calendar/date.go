/*
Package calendar provides date-only values and working-day classification.

PURPOSE:
  Everything in the leave engine operates on calendar days, never on
  clock times. This package owns the Date value type, weekend detection,
  and the Calendar type that answers "is this a working day?" against a
  normalized holiday set.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: a day-granularity value normalized to midnight UTC
  - ISO format: dates cross the API boundary as "YYYY-MM-DD" strings

DESIGN PRINCIPLES:
  1. No time-of-day: two Dates compare equal iff they are the same
     calendar day; timezone ambiguity is eliminated at construction.
  2. Value semantics: Date is copied, never mutated.

SEE ALSO:
  - classify.go: Calendar type and working-day checks
  - normalize.go: observed-holiday shifting and deduplication
*/
package calendar

import (
	"fmt"
	"time"
)

// ISOFormat is the wire format for dates ("YYYY-MM-DD").
const ISOFormat = "2006-01-02"

// Date is a date-only value. The zero Date is invalid.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a time.Time to its calendar day.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISOFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for statically known inputs; panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar day.
func Today() Date {
	return FromTime(time.Now())
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Next() Date         { return d.AddDays(1) }
func (d Date) Prev() Date         { return d.AddDays(-1) }

// DaysBetween returns the signed number of calendar days from d to other.
func (d Date) DaysBetween(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time       { return d.t }

// IsWeekend reports whether the day falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string { return d.t.Format(ISOFormat) }

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO string date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected quoted string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
