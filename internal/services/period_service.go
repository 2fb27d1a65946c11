package services

import (
	"errors"
	"strings"
	"time"

	"github.com/calple/calple/internal/models"
)

const MaxPeriodNotesLength = 2000

var (
	ErrPeriodDayLoadFailed   = errors.New("load period day failed")
	ErrPeriodDayUpsertFailed = errors.New("upsert period day failed")
	ErrPeriodDayDeleteFailed = errors.New("delete period day failed")
)

type PeriodDayInput struct {
	IsPeriod   bool
	Symptoms   []string
	Mood       []string
	Activities []string
	Notes      string
}

type PeriodDayRepository interface {
	ListByUser(userID uint) ([]models.PeriodDay, error)
	ListPeriodDates(userID uint) ([]time.Time, error)
	FindByUserAndDate(userID uint, day time.Time) (models.PeriodDay, bool, error)
	Create(entry *models.PeriodDay) error
	Save(entry *models.PeriodDay) error
	DeleteByUserAndDate(userID uint, day time.Time) error
}

type CycleSettingsRepository interface {
	FindByUser(userID uint) (models.CycleSettings, bool, error)
	Upsert(settings *models.CycleSettings) error
}

type PeriodService struct {
	days     PeriodDayRepository
	settings CycleSettingsRepository
}

func NewPeriodService(days PeriodDayRepository, settings CycleSettingsRepository) *PeriodService {
	return &PeriodService{days: days, settings: settings}
}

func (service *PeriodService) ListDays(userID uint) ([]models.PeriodDay, error) {
	return service.days.ListByUser(userID)
}

// Insights derives the cycle view from the user's confirmed period dates
// and settings. Missing settings fall back to the defaults; missing data
// comes back as the explicit no-data state.
func (service *PeriodService) Insights(userID uint, today time.Time) (PeriodInsights, error) {
	settings, err := service.Settings(userID)
	if err != nil {
		return PeriodInsights{}, err
	}
	dates, err := service.days.ListPeriodDates(userID)
	if err != nil {
		return PeriodInsights{}, err
	}
	return DerivePeriodInsights(dates, settings.CycleLength, settings.PeriodLength, today), nil
}

// UpsertDay is the idempotent log action keyed on (user, date).
func (service *PeriodService) UpsertDay(userID uint, day time.Time, input PeriodDayInput) (models.PeriodDay, error) {
	day = DateOnly(day)
	input = normalizePeriodDayInput(input)

	entry, found, err := service.days.FindByUserAndDate(userID, day)
	if err != nil {
		return models.PeriodDay{}, ErrPeriodDayLoadFailed
	}

	if found {
		entry.IsPeriod = input.IsPeriod
		entry.Symptoms = input.Symptoms
		entry.Mood = input.Mood
		entry.Activities = input.Activities
		entry.Notes = input.Notes
		if err := service.days.Save(&entry); err != nil {
			return models.PeriodDay{}, ErrPeriodDayUpsertFailed
		}
		return entry, nil
	}

	entry = models.PeriodDay{
		UserID:     userID,
		Date:       day,
		IsPeriod:   input.IsPeriod,
		Symptoms:   input.Symptoms,
		Mood:       input.Mood,
		Activities: input.Activities,
		Notes:      input.Notes,
	}
	if err := service.days.Create(&entry); err != nil {
		return models.PeriodDay{}, ErrPeriodDayUpsertFailed
	}
	return entry, nil
}

// UnmarkPeriodDay clears only the period flag. Symptom/mood/activity data
// logged on the same day survives; the row is removed outright only when
// nothing else is recorded on it.
func (service *PeriodService) UnmarkPeriodDay(userID uint, day time.Time) error {
	day = DateOnly(day)
	entry, found, err := service.days.FindByUserAndDate(userID, day)
	if err != nil {
		return ErrPeriodDayLoadFailed
	}
	if !found {
		return nil
	}

	entry.IsPeriod = false
	if !DayHasLogData(entry) {
		if err := service.days.DeleteByUserAndDate(userID, day); err != nil {
			return ErrPeriodDayDeleteFailed
		}
		return nil
	}
	if err := service.days.Save(&entry); err != nil {
		return ErrPeriodDayDeleteFailed
	}
	return nil
}

func (service *PeriodService) Settings(userID uint) (models.CycleSettings, error) {
	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.CycleSettings{}, err
	}
	if !found {
		return models.CycleSettings{
			UserID:       userID,
			CycleLength:  models.DefaultCycleLength,
			PeriodLength: models.DefaultPeriodLength,
		}, nil
	}
	return settings, nil
}

// ReplaceSettings swaps the singleton wholesale after validation.
func (service *PeriodService) ReplaceSettings(userID uint, cycleLength int, periodLength int) (models.CycleSettings, error) {
	if err := ValidateCycleSettings(cycleLength, periodLength); err != nil {
		return models.CycleSettings{}, err
	}

	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.CycleSettings{}, err
	}
	if !found {
		settings = models.CycleSettings{UserID: userID}
	}
	settings.CycleLength = cycleLength
	settings.PeriodLength = periodLength
	if err := service.settings.Upsert(&settings); err != nil {
		return models.CycleSettings{}, err
	}
	return settings, nil
}

// DayHasLogData reports whether a day carries anything besides the period
// flag itself.
func DayHasLogData(entry models.PeriodDay) bool {
	if len(entry.Symptoms) > 0 || len(entry.Mood) > 0 || len(entry.Activities) > 0 {
		return true
	}
	return strings.TrimSpace(entry.Notes) != ""
}

func normalizePeriodDayInput(input PeriodDayInput) PeriodDayInput {
	input.Symptoms = dedupeTags(input.Symptoms)
	input.Mood = dedupeTags(input.Mood)
	input.Activities = dedupeTags(input.Activities)
	input.Notes = trimToLength(input.Notes, MaxPeriodNotesLength)
	return input
}

func dedupeTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		cleaned = append(cleaned, tag)
	}
	return cleaned
}
