package services

import (
	"sort"
	"time"

	"github.com/calple/calple/internal/models"
)

const (
	// Consecutive period days at most this many days apart belong to the
	// same historical period; a larger gap starts a new one.
	PeriodGroupGapDays = 3

	// Fertility window offsets from the period start, fixed in current
	// scope rather than derived from cycle length.
	FertileWindowStartOffset = 11
	FertileWindowEndOffset   = 17

	// Future periods are projected for exactly this many cycles.
	PredictedCycleCount = 3
)

// PeriodGroup is one discrete historical period reconstructed from sparse
// logged dates.
type PeriodGroup struct {
	Start time.Time
	End   time.Time
	Days  int
}

// PeriodInsights is the derived view of a user's cycle. HasData=false
// means insufficient data: every other field is zero and callers must
// treat the state as "no insights available", never as day zero.
type PeriodInsights struct {
	HasData             bool
	PeriodStart         time.Time
	PeriodEnd           time.Time
	NextPeriodDate      time.Time
	DaysUntilNextPeriod int
	CurrentCycleDay     int
	FertileWindowStart  time.Time
	FertileWindowEnd    time.Time
	PredictedDays       []time.Time
}

// GroupPeriodDates reconstructs discrete periods from raw period-day
// dates. Input order is irrelevant; duplicates collapse. A gap of exactly
// PeriodGroupGapDays still joins the running group.
func GroupPeriodDates(dates []time.Time) []PeriodGroup {
	days := normalizePeriodDates(dates)
	if len(days) == 0 {
		return nil
	}

	groups := make([]PeriodGroup, 0, 1)
	current := PeriodGroup{Start: days[0], End: days[0], Days: 1}
	for _, day := range days[1:] {
		if DaysBetween(current.End, day) > PeriodGroupGapDays {
			groups = append(groups, current)
			current = PeriodGroup{Start: day, End: day, Days: 1}
			continue
		}
		current.End = day
		current.Days++
	}
	return append(groups, current)
}

// DerivePeriodInsights computes the cycle view from sparse confirmed
// period days and the user's cycle settings. It is pure and total:
// malformed lengths fall back to the defaults and an empty date set
// yields the explicit no-data state.
func DerivePeriodInsights(periodDates []time.Time, cycleLength int, periodLength int, today time.Time) PeriodInsights {
	if cycleLength <= 0 {
		cycleLength = models.DefaultCycleLength
	}
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}

	groups := GroupPeriodDates(periodDates)
	if len(groups) == 0 {
		return PeriodInsights{}
	}

	latest := groups[len(groups)-1]
	periodStart := latest.Start
	periodEnd := latest.End

	// With only isolated single-day logs the configured period length is
	// more trustworthy than the one observed day, so the period end is
	// synthesized from it. A single-day latest group after a longer
	// historical one keeps start == end.
	if !anyGroupLongerThanOneDay(groups) {
		periodEnd = periodStart.AddDate(0, 0, periodLength-1)
	}

	todayDay := DateOnly(today)
	insights := PeriodInsights{
		HasData:            true,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		NextPeriodDate:     periodStart.AddDate(0, 0, cycleLength),
		FertileWindowStart: periodStart.AddDate(0, 0, FertileWindowStartOffset),
		FertileWindowEnd:   periodStart.AddDate(0, 0, FertileWindowEndOffset),
	}
	// Overdue periods surface as negative values, never clamped.
	insights.DaysUntilNextPeriod = DaysBetween(todayDay, insights.NextPeriodDate)
	insights.CurrentCycleDay = wrappedCycleDay(DaysBetween(periodStart, todayDay), cycleLength)
	insights.PredictedDays = predictFuturePeriodDays(periodDates, periodStart, cycleLength, periodLength)
	return insights
}

// wrappedCycleDay reports the 1-indexed day of the cycle, wrapping so a
// multiple of the cycle length lands on the last day rather than day 0.
func wrappedCycleDay(elapsedDays int, cycleLength int) int {
	day := ((elapsedDays % cycleLength) + cycleLength) % cycleLength
	if day == 0 {
		return cycleLength
	}
	return day
}

// predictFuturePeriodDays fills in the unconfirmed remainder of the
// current period window, then projects PredictedCycleCount whole future
// windows. Confirmed days never appear in the result.
func predictFuturePeriodDays(periodDates []time.Time, periodStart time.Time, cycleLength int, periodLength int) []time.Time {
	confirmed := make(map[time.Time]bool, len(periodDates))
	for _, date := range periodDates {
		confirmed[DateOnly(date)] = true
	}

	predicted := make(map[time.Time]bool)

	currentWindowEnd := periodStart.AddDate(0, 0, periodLength-1)
	confirmedInWindow := 0
	for day := periodStart; !day.After(currentWindowEnd); day = day.AddDate(0, 0, 1) {
		if confirmed[day] {
			confirmedInWindow++
		}
	}
	if confirmedInWindow < periodLength {
		for day := periodStart; !day.After(currentWindowEnd); day = day.AddDate(0, 0, 1) {
			if !confirmed[day] {
				predicted[day] = true
			}
		}
	}

	cursor := periodStart.AddDate(0, 0, cycleLength)
	for cycle := 0; cycle < PredictedCycleCount; cycle++ {
		for offset := 0; offset < periodLength; offset++ {
			day := cursor.AddDate(0, 0, offset)
			if !confirmed[day] {
				predicted[day] = true
			}
		}
		cursor = cursor.AddDate(0, 0, cycleLength)
	}

	days := make([]time.Time, 0, len(predicted))
	for day := range predicted {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func anyGroupLongerThanOneDay(groups []PeriodGroup) bool {
	for _, group := range groups {
		if group.Days > 1 {
			return true
		}
	}
	return false
}

func normalizePeriodDates(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		day := DateOnly(date)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
