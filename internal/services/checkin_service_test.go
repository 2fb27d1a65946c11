package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/calple/calple/internal/models"
)

type fakeCheckinRepo struct {
	checkins map[string]models.Checkin
	nextID   uint
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{checkins: make(map[string]models.Checkin), nextID: 1}
}

func (repo *fakeCheckinRepo) key(userID uint, day time.Time) string {
	return fmt.Sprintf("%d/%s", userID, FormatDayDate(day))
}

func (repo *fakeCheckinRepo) FindByUserAndDate(userID uint, day time.Time) (models.Checkin, bool, error) {
	checkin, found := repo.checkins[repo.key(userID, day)]
	return checkin, found, nil
}

func (repo *fakeCheckinRepo) Create(checkin *models.Checkin) error {
	checkin.ID = repo.nextID
	repo.nextID++
	repo.checkins[repo.key(checkin.UserID, checkin.Date)] = *checkin
	return nil
}

func (repo *fakeCheckinRepo) Save(checkin *models.Checkin) error {
	repo.checkins[repo.key(checkin.UserID, checkin.Date)] = *checkin
	return nil
}

func TestUpsertTodayReplacesSameDay(t *testing.T) {
	t.Parallel()

	service := NewCheckinService(newFakeCheckinRepo())
	today := mustParseDay(t, "2025-06-10")

	first, err := service.UpsertToday(1, today, CheckinInput{Mood: models.MoodGood, Energy: 3})
	if err != nil {
		t.Fatalf("expected first checkin to succeed, got %v", err)
	}

	second, err := service.UpsertToday(1, today, CheckinInput{Mood: models.MoodGreat, Energy: 5, Note: "good day"})
	if err != nil {
		t.Fatalf("expected second checkin to succeed, got %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row %d, got %d", first.ID, second.ID)
	}
	if second.Mood != models.MoodGreat || second.Energy != 5 {
		t.Fatalf("expected replaced values, got mood=%q energy=%d", second.Mood, second.Energy)
	}
}

func TestUpsertTodayValidatesMoodAndEnergy(t *testing.T) {
	t.Parallel()

	service := NewCheckinService(newFakeCheckinRepo())
	today := mustParseDay(t, "2025-06-10")

	if _, err := service.UpsertToday(1, today, CheckinInput{Mood: "ecstatic", Energy: 3}); !errors.Is(err, ErrInvalidCheckinMood) {
		t.Fatalf("expected ErrInvalidCheckinMood, got %v", err)
	}
	if _, err := service.UpsertToday(1, today, CheckinInput{Mood: models.MoodOkay, Energy: 0}); !errors.Is(err, ErrInvalidCheckinEnergy) {
		t.Fatalf("expected ErrInvalidCheckinEnergy for 0, got %v", err)
	}
	if _, err := service.UpsertToday(1, today, CheckinInput{Mood: models.MoodOkay, Energy: 6}); !errors.Is(err, ErrInvalidCheckinEnergy) {
		t.Fatalf("expected ErrInvalidCheckinEnergy for 6, got %v", err)
	}
}

func TestUpsertTodayTruncatesLongNote(t *testing.T) {
	t.Parallel()

	service := NewCheckinService(newFakeCheckinRepo())
	checkin, err := service.UpsertToday(1, mustParseDay(t, "2025-06-10"), CheckinInput{
		Mood:   models.MoodOkay,
		Energy: 2,
		Note:   strings.Repeat("a", MaxCheckinNoteLength+50),
	})
	if err != nil {
		t.Fatalf("expected checkin to succeed, got %v", err)
	}
	if len(checkin.Note) != MaxCheckinNoteLength {
		t.Fatalf("expected note truncated to %d, got %d", MaxCheckinNoteLength, len(checkin.Note))
	}
}

func TestPartnerCheckinRequiresConnection(t *testing.T) {
	t.Parallel()

	service := NewCheckinService(newFakeCheckinRepo())
	if _, _, err := service.PartnerCheckin(&models.User{ID: 1}, mustParseDay(t, "2025-06-10")); !errors.Is(err, ErrNoPartnerConnected) {
		t.Fatalf("expected ErrNoPartnerConnected, got %v", err)
	}
}

func TestPartnerCheckinReadsPartnerRow(t *testing.T) {
	t.Parallel()

	repo := newFakeCheckinRepo()
	service := NewCheckinService(repo)
	today := mustParseDay(t, "2025-06-10")

	if _, err := service.UpsertToday(2, today, CheckinInput{Mood: models.MoodLow, Energy: 2}); err != nil {
		t.Fatalf("expected partner checkin to succeed, got %v", err)
	}

	partnerID := uint(2)
	checkin, found, err := service.PartnerCheckin(&models.User{ID: 1, PartnerID: &partnerID}, today)
	if err != nil || !found {
		t.Fatalf("expected partner checkin found, found=%v err=%v", found, err)
	}
	if checkin.Mood != models.MoodLow {
		t.Fatalf("expected partner mood %q, got %q", models.MoodLow, checkin.Mood)
	}
}
