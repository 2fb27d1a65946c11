package services

import (
	"errors"
	"sort"
	"time"

	"github.com/calple/calple/internal/models"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventForbidden = errors.New("event belongs to another user")
)

type EventRepository interface {
	ListVisibleToUser(userID uint) ([]models.Event, error)
	FindByID(eventID uint) (models.Event, bool, error)
	Create(event *models.Event) error
	Save(event *models.Event) error
	Delete(eventID uint) error
	ClearConnectionsBetween(userID uint, partnerID uint) error
}

type EventService struct {
	events EventRepository
}

func NewEventService(events EventRepository) *EventService {
	return &EventService{events: events}
}

// ListMonth returns the events visible to a user that occupy at least one
// day of the viewed month: annual recurrence and multi-day spans are
// resolved with the same rules the per-cell resolver applies. The result
// is sorted by date then title for a deterministic payload.
func (service *EventService) ListMonth(userID uint, year int, month time.Month) ([]models.Event, error) {
	grid, err := BuildMonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	all, err := service.events.ListVisibleToUser(userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Event, 0)
	seen := make(map[uint]bool)
	for day := 1; day <= grid.DaysInMonth; day++ {
		for _, event := range EventsOnDay(all, day, year, month) {
			if seen[event.ID] {
				continue
			}
			seen[event.ID] = true
			matched = append(matched, event)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].Title < matched[j].Title
	})
	return matched, nil
}

func (service *EventService) Create(ownerID uint, input EventInput, connectedUserIDs []uint) (models.Event, error) {
	normalized, err := NormalizeEventInput(input)
	if err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		OwnerID:          ownerID,
		Title:            normalized.Title,
		Group:            normalized.Group,
		Description:      normalized.Description,
		Date:             normalized.Date,
		EndDate:          normalized.EndDate,
		IsAnnual:         normalized.IsAnnual,
		ConnectedUserIDs: connectedUserIDs,
	}
	if event.ConnectedUserIDs == nil {
		event.ConnectedUserIDs = []uint{}
	}
	if err := service.events.Create(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (service *EventService) Update(ownerID uint, eventID uint, input EventInput, connectedUserIDs []uint) (models.Event, error) {
	event, err := service.loadOwned(ownerID, eventID)
	if err != nil {
		return models.Event{}, err
	}

	normalized, err := NormalizeEventInput(input)
	if err != nil {
		return models.Event{}, err
	}

	event.Title = normalized.Title
	event.Group = normalized.Group
	event.Description = normalized.Description
	event.Date = normalized.Date
	event.EndDate = normalized.EndDate
	event.IsAnnual = normalized.IsAnnual
	if connectedUserIDs != nil {
		event.ConnectedUserIDs = connectedUserIDs
	}
	if err := service.events.Save(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (service *EventService) Delete(ownerID uint, eventID uint) error {
	if _, err := service.loadOwned(ownerID, eventID); err != nil {
		return err
	}
	return service.events.Delete(eventID)
}

func (service *EventService) loadOwned(ownerID uint, eventID uint) (models.Event, error) {
	event, found, err := service.events.FindByID(eventID)
	if err != nil {
		return models.Event{}, err
	}
	if !found {
		return models.Event{}, ErrEventNotFound
	}
	if event.OwnerID != ownerID {
		return models.Event{}, ErrEventForbidden
	}
	return event, nil
}
