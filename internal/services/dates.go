package services

import (
	"fmt"
	"time"
)

const (
	compactDateLayout = "20060102"
	dayDateLayout     = "2006-01-02"
)

// ParseError reports a malformed wire date. Callers treat the affected
// record as unscheduled instead of discarding it.
type ParseError struct {
	Value  string
	Layout string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date %q as %s: %s", e.Value, e.Layout, e.Reason)
}

// ParseCompactDate decodes the event wire format "YYYYMMDD" into a
// timezone-naive civil date (UTC midnight).
func ParseCompactDate(value string) (time.Time, error) {
	if len(value) != len(compactDateLayout) {
		return time.Time{}, &ParseError{Value: value, Layout: compactDateLayout, Reason: "wrong length"}
	}
	for _, char := range value {
		if char < '0' || char > '9' {
			return time.Time{}, &ParseError{Value: value, Layout: compactDateLayout, Reason: "non-numeric"}
		}
	}
	parsed, err := time.ParseInLocation(compactDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: compactDateLayout, Reason: "invalid calendar date"}
	}
	return parsed, nil
}

// ParseDayDate decodes the period wire format "YYYY-MM-DD".
func ParseDayDate(value string) (time.Time, error) {
	if len(value) != len(dayDateLayout) {
		return time.Time{}, &ParseError{Value: value, Layout: dayDateLayout, Reason: "wrong length"}
	}
	parsed, err := time.ParseInLocation(dayDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: dayDateLayout, Reason: "invalid calendar date"}
	}
	return parsed, nil
}

func FormatCompactDate(day time.Time) string {
	return day.Format(compactDateLayout)
}

func FormatDayDate(day time.Time) string {
	return day.Format(dayDateLayout)
}

// DateOnly strips time-of-day and timezone, pinning the civil date to UTC
// midnight so day arithmetic never crosses a DST boundary.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed count of civil days from `from` to `to`.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	day = DateOnly(day)
	start = DateOnly(start)
	end = DateOnly(end)
	return !day.Before(start) && !day.After(end)
}
