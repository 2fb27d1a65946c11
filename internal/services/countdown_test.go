package services

import (
	"testing"
	"time"
)

func TestFormatCountdown(t *testing.T) {
	t.Parallel()

	today := mustParseDay(t, "2026-06-15")

	cases := []struct {
		name      string
		eventDate time.Time
		want      string
	}{
		{name: "same day", eventDate: today, want: "D-Day"},
		{name: "five days ahead", eventDate: today.AddDate(0, 0, 5), want: "D-5"},
		{name: "five days past", eventDate: today.AddDate(0, 0, -5), want: "D+5"},
		{name: "one day ahead", eventDate: today.AddDate(0, 0, 1), want: "D-1"},
		{name: "across a year", eventDate: mustParseDay(t, "2027-06-15"), want: "D-365"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := FormatCountdown(testCase.eventDate, today); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestFormatCountdown_StripsTimeOfDay(t *testing.T) {
	t.Parallel()

	event := time.Date(2026, time.June, 16, 23, 59, 0, 0, time.UTC)
	reference := time.Date(2026, time.June, 15, 0, 1, 0, 0, time.UTC)

	if got := FormatCountdown(event, reference); got != "D-1" {
		t.Fatalf("expected time-of-day to be ignored, got %q", got)
	}
}

// The label for annual events deliberately counts from the literal stored
// year; it does not reset at each anniversary.
func TestFormatCountdown_LiteralDatePolicy(t *testing.T) {
	t.Parallel()

	stored := mustParseDay(t, "2025-01-01")
	reference := mustParseDay(t, "2026-06-01")

	if got := FormatCountdown(stored, reference); got != "D+516" {
		t.Fatalf("expected D+516 for the literal stored date, got %q", got)
	}
}

func TestNearestAnnualOccurrence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		event     string
		reference string
		want      string
	}{
		{name: "upcoming this year", event: "2020-09-01", reference: "2026-06-15", want: "2026-09-01"},
		{name: "recently passed stays this year", event: "2020-05-01", reference: "2026-06-15", want: "2026-05-01"},
		{name: "late year rolls to next year", event: "2020-01-10", reference: "2026-11-20", want: "2027-01-10"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := NearestAnnualOccurrence(mustParseDay(t, testCase.event), mustParseDay(t, testCase.reference))
			if FormatDayDate(got) != testCase.want {
				t.Fatalf("expected %s, got %s", testCase.want, FormatDayDate(got))
			}
		})
	}
}
