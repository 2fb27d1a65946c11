package services

import (
	"testing"
	"time"
)

func mustParseDays(t *testing.T, values ...string) []time.Time {
	t.Helper()
	days := make([]time.Time, 0, len(values))
	for _, value := range values {
		days = append(days, mustParseDay(t, value))
	}
	return days
}

func containsDay(days []time.Time, day time.Time) bool {
	for _, candidate := range days {
		if candidate.Equal(day) {
			return true
		}
	}
	return false
}

func TestGroupPeriodDates_GapRule(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-01-01", "2026-01-02", "2026-01-03", "2026-01-10")

	groups := GroupPeriodDates(dates)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if got := FormatDayDate(groups[0].Start); got != "2026-01-01" {
		t.Fatalf("expected first group to start Jan 1, got %s", got)
	}
	if got := FormatDayDate(groups[0].End); got != "2026-01-03" {
		t.Fatalf("expected first group to end Jan 3, got %s", got)
	}
	if groups[1].Days != 1 {
		t.Fatalf("expected isolated Jan 10 group, got %d days", groups[1].Days)
	}
}

func TestGroupPeriodDates_GapOfExactlyThreeJoins(t *testing.T) {
	t.Parallel()

	groups := GroupPeriodDates(mustParseDays(t, "2026-01-01", "2026-01-04"))
	if len(groups) != 1 {
		t.Fatalf("expected a 3-day gap to join the group, got %d groups", len(groups))
	}

	groups = GroupPeriodDates(mustParseDays(t, "2026-01-01", "2026-01-05"))
	if len(groups) != 2 {
		t.Fatalf("expected a 4-day gap to split, got %d groups", len(groups))
	}
}

func TestGroupPeriodDates_UnsortedDuplicateInput(t *testing.T) {
	t.Parallel()

	groups := GroupPeriodDates(mustParseDays(t, "2026-01-02", "2026-01-01", "2026-01-02", "2026-01-03"))
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if groups[0].Days != 3 {
		t.Fatalf("expected duplicates to collapse to 3 days, got %d", groups[0].Days)
	}
}

func TestDerivePeriodInsights_EmptyInputIsNoData(t *testing.T) {
	t.Parallel()

	insights := DerivePeriodInsights(nil, 28, 5, mustParseDay(t, "2026-06-15"))
	if insights.HasData {
		t.Fatalf("expected HasData=false for empty input")
	}
	if insights.CurrentCycleDay != 0 || len(insights.PredictedDays) != 0 {
		t.Fatalf("expected zero-valued insights, got %+v", insights)
	}
}

func TestDerivePeriodInsights_BasicFields(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04", "2026-06-05")
	today := mustParseDay(t, "2026-06-15")

	insights := DerivePeriodInsights(dates, 28, 5, today)
	if !insights.HasData {
		t.Fatalf("expected HasData=true")
	}
	if got := FormatDayDate(insights.PeriodStart); got != "2026-06-01" {
		t.Fatalf("expected period start Jun 1, got %s", got)
	}
	if got := FormatDayDate(insights.PeriodEnd); got != "2026-06-05" {
		t.Fatalf("expected period end Jun 5, got %s", got)
	}
	if got := FormatDayDate(insights.NextPeriodDate); got != "2026-06-29" {
		t.Fatalf("expected next period Jun 29, got %s", got)
	}
	if insights.DaysUntilNextPeriod != 14 {
		t.Fatalf("expected 14 days until next period, got %d", insights.DaysUntilNextPeriod)
	}
	if insights.CurrentCycleDay != 14 {
		t.Fatalf("expected cycle day 14, got %d", insights.CurrentCycleDay)
	}
	if got := FormatDayDate(insights.FertileWindowStart); got != "2026-06-12" {
		t.Fatalf("expected fertile window start Jun 12, got %s", got)
	}
	if got := FormatDayDate(insights.FertileWindowEnd); got != "2026-06-18" {
		t.Fatalf("expected fertile window end Jun 18, got %s", got)
	}
}

func TestDerivePeriodInsights_CycleDayWrapsToCycleLength(t *testing.T) {
	t.Parallel()

	today := mustParseDay(t, "2026-06-29")
	start := today.AddDate(0, 0, -28)
	dates := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)}

	insights := DerivePeriodInsights(dates, 28, 5, today)
	if insights.CurrentCycleDay != 28 {
		t.Fatalf("expected cycle day 28 at the wrap point, got %d", insights.CurrentCycleDay)
	}
}

func TestDerivePeriodInsights_OverduePeriodStaysNegative(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-04-01", "2026-04-02")
	today := mustParseDay(t, "2026-06-15")

	insights := DerivePeriodInsights(dates, 28, 5, today)
	if insights.DaysUntilNextPeriod >= 0 {
		t.Fatalf("expected a negative overdue count, got %d", insights.DaysUntilNextPeriod)
	}
	if insights.DaysUntilNextPeriod != -47 {
		t.Fatalf("expected -47 days until next period, got %d", insights.DaysUntilNextPeriod)
	}
}

func TestDerivePeriodInsights_SingleDayFallbackUsesPeriodLength(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-06-01")
	today := mustParseDay(t, "2026-06-03")

	insights := DerivePeriodInsights(dates, 28, 5, today)
	if got := FormatDayDate(insights.PeriodEnd); got != "2026-06-05" {
		t.Fatalf("expected synthesized period end Jun 5, got %s", got)
	}
}

func TestDerivePeriodInsights_SingletonAfterFullPeriodKeepsObservedEnd(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-05-01", "2026-05-02", "2026-05-03", "2026-06-01")
	today := mustParseDay(t, "2026-06-03")

	insights := DerivePeriodInsights(dates, 28, 5, today)
	if got := FormatDayDate(insights.PeriodStart); got != "2026-06-01" {
		t.Fatalf("expected period start Jun 1, got %s", got)
	}
	if got := FormatDayDate(insights.PeriodEnd); got != "2026-06-01" {
		t.Fatalf("expected observed single-day end Jun 1, got %s", got)
	}
}

func TestDerivePeriodInsights_PredictedDaysExcludeConfirmed(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-06-01", "2026-06-02", "2026-06-03")
	today := mustParseDay(t, "2026-06-10")

	insights := DerivePeriodInsights(dates, 28, 5, today)
	for _, confirmed := range dates {
		if containsDay(insights.PredictedDays, confirmed) {
			t.Fatalf("confirmed day %s leaked into predictions", FormatDayDate(confirmed))
		}
	}
	// The unconfirmed tail of the current 5-day window is predicted.
	if !containsDay(insights.PredictedDays, mustParseDay(t, "2026-06-04")) {
		t.Fatalf("expected Jun 4 to be predicted")
	}
	if !containsDay(insights.PredictedDays, mustParseDay(t, "2026-06-05")) {
		t.Fatalf("expected Jun 5 to be predicted")
	}
}

func TestDerivePeriodInsights_FutureHorizonIsThreeCycles(t *testing.T) {
	t.Parallel()

	dates := mustParseDays(t, "2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04", "2026-06-05")
	today := mustParseDay(t, "2026-06-10")

	insights := DerivePeriodInsights(dates, 28, 5, today)

	bound := insights.PeriodStart.AddDate(0, 0, 3*28+5)
	for _, day := range insights.PredictedDays {
		if day.After(bound) {
			t.Fatalf("predicted day %s is beyond the 3-cycle horizon", FormatDayDate(day))
		}
	}

	// Three cycles, five days each, none of the current window confirmed
	// days repeated.
	if len(insights.PredictedDays) != 15 {
		t.Fatalf("expected 15 predicted days, got %d", len(insights.PredictedDays))
	}
	if !containsDay(insights.PredictedDays, mustParseDay(t, "2026-06-29")) {
		t.Fatalf("expected the first projected cycle to start Jun 29")
	}
	last := insights.PredictedDays[len(insights.PredictedDays)-1]
	if got := FormatDayDate(last); got != "2026-08-28" {
		t.Fatalf("expected the horizon to end Aug 28, got %s", got)
	}
}
