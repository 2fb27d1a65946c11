// Package reminders runs the daily background sweep that surfaces
// upcoming D-Days and overdue periods in the server log.
package reminders

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/calple/calple/internal/db"
	"github.com/calple/calple/internal/services"
)

const (
	sweepSchedule   = "0 8 * * *"
	upcomingHorizon = 7
)

type Service struct {
	repos    *db.Repositories
	location *time.Location
	cron     *cron.Cron
}

func NewService(repos *db.Repositories, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repos:    repos,
		location: location,
		cron:     cron.New(cron.WithLocation(location)),
	}
}

// Start schedules the daily sweep and stops the scheduler when ctx is
// cancelled.
func (service *Service) Start(ctx context.Context) error {
	if _, err := service.cron.AddFunc(sweepSchedule, service.sweep); err != nil {
		return err
	}
	service.cron.Start()

	go func() {
		<-ctx.Done()
		stopCtx := service.cron.Stop()
		<-stopCtx.Done()
	}()
	return nil
}

func (service *Service) sweep() {
	today := services.DateOnly(time.Now().In(service.location))

	users, err := service.repos.Users.ListAll()
	if err != nil {
		log.Printf("reminders: listing users failed: %v", err)
		return
	}

	for index := range users {
		user := &users[index]
		service.sweepEvents(user.ID, today)
		service.sweepPeriod(user.ID, today)
	}
}

func (service *Service) sweepEvents(userID uint, today time.Time) {
	events, err := service.repos.Events.ListVisibleToUser(userID)
	if err != nil {
		log.Printf("reminders: listing events for user %d failed: %v", userID, err)
		return
	}

	for _, event := range events {
		daysUntil, upcoming := DaysUntilOccurrence(event.Date, event.IsAnnual, today, upcomingHorizon)
		if !upcoming {
			continue
		}
		log.Printf("reminders: user %d has %q in %d day(s)", userID, event.Title, daysUntil)
	}
}

func (service *Service) sweepPeriod(userID uint, today time.Time) {
	periodDates, err := service.repos.PeriodDays.ListPeriodDates(userID)
	if err != nil {
		log.Printf("reminders: listing period days for user %d failed: %v", userID, err)
		return
	}
	if len(periodDates) == 0 {
		return
	}

	settings, _, err := service.repos.CycleSettings.FindByUser(userID)
	if err != nil {
		log.Printf("reminders: loading settings for user %d failed: %v", userID, err)
		return
	}

	insights := services.DerivePeriodInsights(periodDates, settings.CycleLength, settings.PeriodLength, today)
	if !insights.HasData {
		return
	}
	if insights.DaysUntilNextPeriod < 0 {
		log.Printf("reminders: user %d period overdue by %d day(s)", userID, -insights.DaysUntilNextPeriod)
	}
}

// DaysUntilOccurrence reports how many days remain until the event's next
// occurrence, and whether that falls inside the horizon. Annual events
// count to their nearest yearly occurrence; past one-off events never
// qualify.
func DaysUntilOccurrence(eventDate time.Time, isAnnual bool, today time.Time, horizonDays int) (int, bool) {
	target := services.DateOnly(eventDate)
	if isAnnual {
		target = services.NearestAnnualOccurrence(eventDate, today)
	}

	daysUntil := services.DaysBetween(today, target)
	if daysUntil < 0 || daysUntil > horizonDays {
		return daysUntil, false
	}
	return daysUntil, true
}
