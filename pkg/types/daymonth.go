package types

import (
	"fmt"
	"strings"
	"time"
)

// DayMonthFormat is the canonical zero-padded serialization layout.
const DayMonthFormat = "02 January"

// parseFormat accepts both padded and unpadded days ("06 October", "6 October"):
// the record file is human-editable and hand-written days come in both forms.
const parseFormat = "2 January"

// DayMonth represents a calendar date without a year ("06 October").
// Stored records carry no year; the value is interpreted against the
// current calendar year at read time.
type DayMonth struct {
	day   int
	month time.Month
}

// NewDayMonth builds a DayMonth from a time.Time, discarding the year.
func NewDayMonth(t time.Time) DayMonth {
	return DayMonth{day: t.Day(), month: t.Month()}
}

// NewDayMonthFromString parses the "DD Month" representation.
func NewDayMonthFromString(s string) (DayMonth, error) {
	t, err := time.Parse(parseFormat, strings.TrimSpace(s))
	if err != nil {
		return DayMonth{}, fmt.Errorf("invalid day-month string %q: %w", s, err)
	}
	return DayMonth{day: t.Day(), month: t.Month()}, nil
}

// IsZero returns true for the zero value (no date set).
func (d DayMonth) IsZero() bool {
	return d.day == 0 && d.month == 0
}

// Validate checks that the value denotes an existing calendar date.
func (d DayMonth) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("day-month is not set")
	}
	if d.month < time.January || d.month > time.December {
		return fmt.Errorf("invalid month %d", d.month)
	}
	// time.Date normalizes a day overflow into the next month
	t := time.Date(2000, d.month, d.day, 0, 0, 0, 0, time.UTC)
	if t.Month() != d.month || t.Day() != d.day {
		return fmt.Errorf("invalid day %d for month %s", d.day, d.month)
	}
	return nil
}

// String returns the canonical "DD Month" representation.
func (d DayMonth) String() string {
	return fmt.Sprintf("%02d %s", d.day, d.month)
}

// Time interprets the value against the given year in the given location.
func (d DayMonth) Time(year int, loc *time.Location) time.Time {
	return time.Date(year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Equal returns true if both values denote the same day and month.
func (d DayMonth) Equal(other DayMonth) bool {
	return d.day == other.day && d.month == other.month
}

// Before reports whether d falls earlier in the calendar year than other.
func (d DayMonth) Before(other DayMonth) bool {
	return d.ordinal() < other.ordinal()
}

// Ordinal returns the date's position within the year, used for sorting.
func (d DayMonth) Ordinal() int {
	return d.ordinal()
}

func (d DayMonth) ordinal() int {
	return int(d.month)*100 + d.day
}
