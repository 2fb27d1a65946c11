package services

import (
	"fmt"
	"time"
)

const CountdownTodayLabel = "D-Day"

// FormatCountdown renders the D-Day label for an event date relative to a
// reference day: "D-Day" on the day itself, "D-n" with n days remaining,
// "D+n" with n days elapsed. Both inputs are normalized to UTC civil
// dates first.
//
// The label is always computed against the literal stored date. For
// annual events this means the counter keeps growing past the stored
// year instead of resetting at each anniversary; that matches the
// shipped behavior and is kept deliberately. Callers that want the
// resetting label combine this with NearestAnnualOccurrence.
func FormatCountdown(eventDate time.Time, reference time.Time) string {
	event := DateOnly(eventDate)
	today := DateOnly(reference)

	diffDays := DaysBetween(today, event)
	switch {
	case diffDays == 0:
		return CountdownTodayLabel
	case diffDays > 0:
		return fmt.Sprintf("D-%d", diffDays)
	default:
		return fmt.Sprintf("D+%d", -diffDays)
	}
}

// NearestAnnualOccurrence projects an annual event's month/day onto
// whichever of the reference year and the following year lies closer to
// the reference day.
func NearestAnnualOccurrence(eventDate time.Time, reference time.Time) time.Time {
	event := DateOnly(eventDate)
	today := DateOnly(reference)

	nearest := time.Time{}
	nearestDistance := 0
	for _, year := range []int{today.Year(), today.Year() + 1} {
		occurrence := time.Date(year, event.Month(), event.Day(), 0, 0, 0, 0, time.UTC)
		distance := DaysBetween(today, occurrence)
		if distance < 0 {
			distance = -distance
		}
		if nearest.IsZero() || distance < nearestDistance {
			nearest = occurrence
			nearestDistance = distance
		}
	}
	return nearest
}
