package services

import (
	"time"

	"github.com/calple/calple/internal/models"
)

// EventsOnDay filters events down to the ones occupying one grid cell of
// the viewed month. Blank cells (day <= 0) resolve to nothing before any
// date comparison. The result preserves input order; callers wanting a
// deterministic payload sort it themselves.
func EventsOnDay(events []models.Event, day int, viewedYear int, viewedMonth time.Month) []models.Event {
	if day <= 0 {
		return nil
	}

	target := time.Date(viewedYear, viewedMonth, day, 0, 0, 0, 0, time.UTC)
	if target.Day() != day || target.Month() != viewedMonth {
		return nil
	}

	matched := make([]models.Event, 0)
	for _, event := range events {
		if eventOccupiesDay(event, target) {
			matched = append(matched, event)
		}
	}
	return matched
}

func eventOccupiesDay(event models.Event, target time.Time) bool {
	start := DateOnly(event.Date)
	end := start
	if event.EndDate != nil {
		candidate := DateOnly(*event.EndDate)
		if candidate.After(start) {
			end = candidate
		}
	}

	if !event.IsAnnual {
		return betweenCalendarDaysInclusive(target, start, end)
	}

	spanDays := DaysBetween(start, end)
	// The stored year only anchors the span's duration; the window itself
	// repeats anchored to the viewed year. Spans that cross New Year are
	// caught by also anchoring to the previous year.
	for _, anchorYear := range []int{target.Year(), target.Year() - 1} {
		anchorStart := time.Date(anchorYear, start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		anchorEnd := anchorStart.AddDate(0, 0, spanDays)
		if betweenCalendarDaysInclusive(target, anchorStart, anchorEnd) {
			return true
		}
	}
	return false
}
