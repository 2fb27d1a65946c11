package db

import (
	"strconv"

	"github.com/calple/calple/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

// ListVisibleToUser returns the user's own events plus events another
// user connected to them.
func (repo *EventRepository) ListVisibleToUser(userID uint) ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := repo.database.
		Where("owner_id = ? OR connected_user_ids LIKE ?", userID, connectedUserPattern(userID)).
		Order("date ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return filterVisible(events, userID), nil
}

func (repo *EventRepository) FindByID(eventID uint) (models.Event, bool, error) {
	event := models.Event{}
	result := repo.database.Limit(1).Find(&event, eventID)
	if result.Error != nil {
		return models.Event{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Event{}, false, nil
	}
	return event, true, nil
}

func (repo *EventRepository) Create(event *models.Event) error {
	return repo.database.Create(event).Error
}

func (repo *EventRepository) Save(event *models.Event) error {
	return repo.database.Save(event).Error
}

func (repo *EventRepository) Delete(eventID uint) error {
	return repo.database.Delete(&models.Event{}, eventID).Error
}

// ClearConnectionsBetween removes each user from the other's shared
// events when a couple disconnects.
func (repo *EventRepository) ClearConnectionsBetween(userID uint, partnerID uint) error {
	for _, pair := range [][2]uint{{userID, partnerID}, {partnerID, userID}} {
		events := make([]models.Event, 0)
		if err := repo.database.
			Where("owner_id = ? AND connected_user_ids LIKE ?", pair[0], connectedUserPattern(pair[1])).
			Find(&events).Error; err != nil {
			return err
		}
		for index := range events {
			events[index].ConnectedUserIDs = removeUint(events[index].ConnectedUserIDs, pair[1])
			if err := repo.database.Model(&events[index]).
				Select("connected_user_ids").
				Updates(&events[index]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// The JSON column match is a coarse prefilter; filterVisible applies the
// exact membership check in memory.
func connectedUserPattern(userID uint) string {
	return "%" + strconv.FormatUint(uint64(userID), 10) + "%"
}

func filterVisible(events []models.Event, userID uint) []models.Event {
	visible := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.OwnerID == userID || containsUint(event.ConnectedUserIDs, userID) {
			visible = append(visible, event)
		}
	}
	return visible
}

func containsUint(values []uint, needle uint) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}

func removeUint(values []uint, needle uint) []uint {
	filtered := make([]uint, 0, len(values))
	for _, value := range values {
		if value != needle {
			filtered = append(filtered, value)
		}
	}
	return filtered
}

