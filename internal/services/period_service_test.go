package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/calple/calple/internal/models"
)

type fakePeriodDayRepo struct {
	entries map[string]models.PeriodDay
	nextID  uint
}

func newFakePeriodDayRepo() *fakePeriodDayRepo {
	return &fakePeriodDayRepo{entries: make(map[string]models.PeriodDay), nextID: 1}
}

func (repo *fakePeriodDayRepo) key(userID uint, day time.Time) string {
	return fmt.Sprintf("%d/%s", userID, FormatDayDate(day))
}

func (repo *fakePeriodDayRepo) ListByUser(userID uint) ([]models.PeriodDay, error) {
	days := make([]models.PeriodDay, 0)
	for _, entry := range repo.entries {
		if entry.UserID == userID {
			days = append(days, entry)
		}
	}
	return days, nil
}

func (repo *fakePeriodDayRepo) ListPeriodDates(userID uint) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	for _, entry := range repo.entries {
		if entry.UserID == userID && entry.IsPeriod {
			dates = append(dates, entry.Date)
		}
	}
	return dates, nil
}

func (repo *fakePeriodDayRepo) FindByUserAndDate(userID uint, day time.Time) (models.PeriodDay, bool, error) {
	entry, found := repo.entries[repo.key(userID, day)]
	return entry, found, nil
}

func (repo *fakePeriodDayRepo) Create(entry *models.PeriodDay) error {
	entry.ID = repo.nextID
	repo.nextID++
	repo.entries[repo.key(entry.UserID, entry.Date)] = *entry
	return nil
}

func (repo *fakePeriodDayRepo) Save(entry *models.PeriodDay) error {
	repo.entries[repo.key(entry.UserID, entry.Date)] = *entry
	return nil
}

func (repo *fakePeriodDayRepo) DeleteByUserAndDate(userID uint, day time.Time) error {
	delete(repo.entries, repo.key(userID, day))
	return nil
}

type fakeSettingsRepo struct {
	settings map[uint]models.CycleSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uint]models.CycleSettings)}
}

func (repo *fakeSettingsRepo) FindByUser(userID uint) (models.CycleSettings, bool, error) {
	settings, found := repo.settings[userID]
	return settings, found, nil
}

func (repo *fakeSettingsRepo) Upsert(settings *models.CycleSettings) error {
	repo.settings[settings.UserID] = *settings
	return nil
}

func TestUpsertDayCreatesThenUpdatesSameRow(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodDayRepo()
	service := NewPeriodService(repo, newFakeSettingsRepo())
	day := mustParseDay(t, "2025-06-10")

	first, err := service.UpsertDay(1, day, PeriodDayInput{IsPeriod: true, Symptoms: []string{"cramps"}})
	if err != nil {
		t.Fatalf("expected first upsert to succeed, got %v", err)
	}

	second, err := service.UpsertDay(1, day, PeriodDayInput{IsPeriod: true, Symptoms: []string{"cramps", "headache"}})
	if err != nil {
		t.Fatalf("expected second upsert to succeed, got %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected upsert to reuse row %d, got %d", first.ID, second.ID)
	}
	if len(second.Symptoms) != 2 {
		t.Fatalf("expected 2 symptoms after update, got %d", len(second.Symptoms))
	}

	days, err := service.ListDays(1)
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected a single row for the day, got %d", len(days))
	}
}

func TestUpsertDayDedupesTags(t *testing.T) {
	t.Parallel()

	service := NewPeriodService(newFakePeriodDayRepo(), newFakeSettingsRepo())
	entry, err := service.UpsertDay(1, mustParseDay(t, "2025-06-10"), PeriodDayInput{
		Mood: []string{"calm", " calm ", "", "happy"},
	})
	if err != nil {
		t.Fatalf("expected upsert to succeed, got %v", err)
	}
	if len(entry.Mood) != 2 {
		t.Fatalf("expected duplicate and blank tags dropped, got %v", entry.Mood)
	}
}

func TestUnmarkPeriodDayKeepsLoggedData(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodDayRepo()
	service := NewPeriodService(repo, newFakeSettingsRepo())
	day := mustParseDay(t, "2025-06-10")

	if _, err := service.UpsertDay(1, day, PeriodDayInput{IsPeriod: true, Notes: "tired"}); err != nil {
		t.Fatalf("expected upsert to succeed, got %v", err)
	}
	if err := service.UnmarkPeriodDay(1, day); err != nil {
		t.Fatalf("expected unmark to succeed, got %v", err)
	}

	entry, found, err := repo.FindByUserAndDate(1, day)
	if err != nil || !found {
		t.Fatalf("expected row to survive unmark, found=%v err=%v", found, err)
	}
	if entry.IsPeriod {
		t.Fatalf("expected period flag cleared")
	}
	if entry.Notes != "tired" {
		t.Fatalf("expected notes preserved, got %q", entry.Notes)
	}
}

func TestUnmarkPeriodDayRemovesEmptyRow(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodDayRepo()
	service := NewPeriodService(repo, newFakeSettingsRepo())
	day := mustParseDay(t, "2025-06-10")

	if _, err := service.UpsertDay(1, day, PeriodDayInput{IsPeriod: true}); err != nil {
		t.Fatalf("expected upsert to succeed, got %v", err)
	}
	if err := service.UnmarkPeriodDay(1, day); err != nil {
		t.Fatalf("expected unmark to succeed, got %v", err)
	}

	if _, found, _ := repo.FindByUserAndDate(1, day); found {
		t.Fatalf("expected empty row to be deleted")
	}
}

func TestUnmarkPeriodDayMissingRowIsNoop(t *testing.T) {
	t.Parallel()

	service := NewPeriodService(newFakePeriodDayRepo(), newFakeSettingsRepo())
	if err := service.UnmarkPeriodDay(1, mustParseDay(t, "2025-06-10")); err != nil {
		t.Fatalf("expected missing row to be a no-op, got %v", err)
	}
}

func TestSettingsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	service := NewPeriodService(newFakePeriodDayRepo(), newFakeSettingsRepo())
	settings, err := service.Settings(7)
	if err != nil {
		t.Fatalf("expected settings to succeed, got %v", err)
	}
	if settings.CycleLength != models.DefaultCycleLength || settings.PeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected defaults %d/%d, got %d/%d",
			models.DefaultCycleLength, models.DefaultPeriodLength, settings.CycleLength, settings.PeriodLength)
	}
}

func TestReplaceSettingsValidatesRanges(t *testing.T) {
	t.Parallel()

	service := NewPeriodService(newFakePeriodDayRepo(), newFakeSettingsRepo())

	if _, err := service.ReplaceSettings(1, models.MinCycleLength-1, models.DefaultPeriodLength); !errors.Is(err, ErrCycleLengthOutOfRange) {
		t.Fatalf("expected cycle length rejection, got %v", err)
	}
	if _, err := service.ReplaceSettings(1, models.DefaultCycleLength, models.MaxPeriodLength+1); !errors.Is(err, ErrPeriodLengthOutOfRange) {
		t.Fatalf("expected period length rejection, got %v", err)
	}

	settings, err := service.ReplaceSettings(1, 30, 6)
	if err != nil {
		t.Fatalf("expected valid settings to save, got %v", err)
	}
	if settings.CycleLength != 30 || settings.PeriodLength != 6 {
		t.Fatalf("expected 30/6, got %d/%d", settings.CycleLength, settings.PeriodLength)
	}

	reloaded, err := service.Settings(1)
	if err != nil {
		t.Fatalf("expected reload to succeed, got %v", err)
	}
	if reloaded.CycleLength != 30 {
		t.Fatalf("expected persisted cycle length 30, got %d", reloaded.CycleLength)
	}
}

func TestInsightsUseStoredSettings(t *testing.T) {
	t.Parallel()

	repo := newFakePeriodDayRepo()
	settingsRepo := newFakeSettingsRepo()
	service := NewPeriodService(repo, settingsRepo)

	if _, err := service.ReplaceSettings(1, 30, 5); err != nil {
		t.Fatalf("expected settings save to succeed, got %v", err)
	}
	for _, raw := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		if _, err := service.UpsertDay(1, mustParseDay(t, raw), PeriodDayInput{IsPeriod: true}); err != nil {
			t.Fatalf("expected upsert to succeed, got %v", err)
		}
	}

	insights, err := service.Insights(1, mustParseDay(t, "2025-06-10"))
	if err != nil {
		t.Fatalf("expected insights to succeed, got %v", err)
	}
	if !insights.HasData {
		t.Fatalf("expected insights with data")
	}
	if got := FormatDayDate(insights.NextPeriodDate); got != "2025-07-01" {
		t.Fatalf("expected next period 2025-07-01 with 30-day cycle, got %s", got)
	}
}
