package services

import (
	"errors"
	"strings"
	"time"

	"github.com/calple/calple/internal/models"
)

const MaxEventDescriptionLength = 2000

var (
	ErrEventTitleRequired = errors.New("event title required")
	ErrInvalidEventGroup  = errors.New("invalid event group")
	ErrEventEndBeforeDate = errors.New("event end date before start date")
)

type EventInput struct {
	Title       string
	Group       string
	Description string
	Date        time.Time
	EndDate     *time.Time
	IsAnnual    bool
}

// NormalizeEventInput validates and canonicalizes a D-Day draft: empty
// groups fall back to "others", an end date equal to the start collapses
// to a single-day event, an end date before the start is rejected.
func NormalizeEventInput(input EventInput) (EventInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, ErrEventTitleRequired
	}

	input.Group = strings.TrimSpace(input.Group)
	if input.Group == "" {
		input.Group = models.GroupOthers
	}
	if !IsValidEventGroup(input.Group) {
		return input, ErrInvalidEventGroup
	}

	input.Description = trimToLength(input.Description, MaxEventDescriptionLength)
	input.Date = DateOnly(input.Date)

	if input.EndDate != nil {
		end := DateOnly(*input.EndDate)
		if end.Before(input.Date) {
			return input, ErrEventEndBeforeDate
		}
		if end.Equal(input.Date) {
			input.EndDate = nil
		} else {
			input.EndDate = &end
		}
	}

	return input, nil
}

func IsValidEventGroup(group string) bool {
	switch group {
	case models.GroupFamily, models.GroupSelf, models.GroupSchool, models.GroupDates,
		models.GroupTravel, models.GroupFriends, models.GroupWork, models.GroupOthers:
		return true
	default:
		return false
	}
}

func trimToLength(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
