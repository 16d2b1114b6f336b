package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used everywhere in debtbook.
const DateLayout = "2006-01-02"

// Date is a calendar date at UTC midnight. The zero value means "no date".
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// IsEmpty reports whether the date is absent.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// String formats the date as YYYY-MM-DD, or "" when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MonthLabel returns the YYYY-MM label of the date's calendar month.
func (d Date) MonthLabel() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01")
}

// DaysSince returns whole days elapsed from other to d (negative if other is later).
func (d Date) DaysSince(other Date) int {
	return int(d.Sub(other.Time).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON is lenient: null, "" and unparsable values all decode to the
// zero Date. Records imported with a broken date keep their other fields and are
// excluded by any active DateRange.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = Date{Time: t}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = Today(t.UTC())
		return nil
	}
	*d = Date{}
	return nil
}

// DateRange holds the optional inclusive statement filter bounds.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewDateRange parses optional YYYY-MM-DD bounds.
func NewDateRange(from, to string) (DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("from: %w", err)
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("to: %w", err)
	}
	return DateRange{From: f, To: t}, nil
}

// Active reports whether at least one bound is set.
func (r DateRange) Active() bool {
	return !r.From.IsZero() || !r.To.IsZero()
}

// Contains reports whether d satisfies both bounds. An absent date only
// satisfies an inactive range.
func (r DateRange) Contains(d Date) bool {
	if !r.Active() {
		return true
	}
	if d.IsZero() {
		return false
	}
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}
