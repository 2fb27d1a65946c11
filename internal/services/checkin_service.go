package services

import (
	"errors"
	"strings"
	"time"

	"github.com/calple/calple/internal/models"
)

const (
	MinCheckinEnergy = 1
	MaxCheckinEnergy = 5

	MaxCheckinNoteLength = 500
)

var (
	ErrInvalidCheckinMood   = errors.New("invalid checkin mood")
	ErrInvalidCheckinEnergy = errors.New("invalid checkin energy")
	ErrNoPartnerConnected   = errors.New("no partner connected")
)

type CheckinInput struct {
	Mood   string
	Energy int
	Note   string
}

type CheckinRepository interface {
	FindByUserAndDate(userID uint, day time.Time) (models.Checkin, bool, error)
	Create(checkin *models.Checkin) error
	Save(checkin *models.Checkin) error
}

type CheckinService struct {
	checkins CheckinRepository
}

func NewCheckinService(checkins CheckinRepository) *CheckinService {
	return &CheckinService{checkins: checkins}
}

func IsValidCheckinMood(mood string) bool {
	switch mood {
	case models.MoodGreat, models.MoodGood, models.MoodOkay, models.MoodLow, models.MoodRough:
		return true
	default:
		return false
	}
}

// UpsertToday records the day's mood/energy check-in, replacing any
// earlier one for the same day.
func (service *CheckinService) UpsertToday(userID uint, today time.Time, input CheckinInput) (models.Checkin, error) {
	if !IsValidCheckinMood(input.Mood) {
		return models.Checkin{}, ErrInvalidCheckinMood
	}
	if input.Energy < MinCheckinEnergy || input.Energy > MaxCheckinEnergy {
		return models.Checkin{}, ErrInvalidCheckinEnergy
	}
	input.Note = trimToLength(strings.TrimSpace(input.Note), MaxCheckinNoteLength)

	day := DateOnly(today)
	checkin, found, err := service.checkins.FindByUserAndDate(userID, day)
	if err != nil {
		return models.Checkin{}, err
	}
	if found {
		checkin.Mood = input.Mood
		checkin.Energy = input.Energy
		checkin.Note = input.Note
		if err := service.checkins.Save(&checkin); err != nil {
			return models.Checkin{}, err
		}
		return checkin, nil
	}

	checkin = models.Checkin{
		UserID: userID,
		Date:   day,
		Mood:   input.Mood,
		Energy: input.Energy,
		Note:   input.Note,
	}
	if err := service.checkins.Create(&checkin); err != nil {
		return models.Checkin{}, err
	}
	return checkin, nil
}

func (service *CheckinService) FindForDay(userID uint, day time.Time) (models.Checkin, bool, error) {
	return service.checkins.FindByUserAndDate(userID, DateOnly(day))
}

// PartnerCheckin fetches the connected partner's check-in for the day.
func (service *CheckinService) PartnerCheckin(user *models.User, day time.Time) (models.Checkin, bool, error) {
	if user == nil || user.PartnerID == nil {
		return models.Checkin{}, false, ErrNoPartnerConnected
	}
	return service.checkins.FindByUserAndDate(*user.PartnerID, DateOnly(day))
}
