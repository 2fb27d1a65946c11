package services

import (
	"errors"
	"testing"
	"time"
)

func TestBuildMonthGrid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		year       int
		month      time.Month
		wantOffset int
		wantDays   int
		wantRows   int
	}{
		{name: "january 2024 starts monday", year: 2024, month: time.January, wantOffset: 1, wantDays: 31, wantRows: 5},
		{name: "february 2024 leap year", year: 2024, month: time.February, wantOffset: 4, wantDays: 29, wantRows: 5},
		{name: "june 2024 needs six rows", year: 2024, month: time.June, wantOffset: 6, wantDays: 30, wantRows: 6},
		{name: "september 2024 starts sunday", year: 2024, month: time.September, wantOffset: 0, wantDays: 30, wantRows: 5},
		{name: "february 2026 fits four rows", year: 2026, month: time.February, wantOffset: 0, wantDays: 28, wantRows: 4},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			grid, err := BuildMonthGrid(testCase.year, testCase.month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grid.FirstWeekdayOffset != testCase.wantOffset {
				t.Fatalf("expected offset %d, got %d", testCase.wantOffset, grid.FirstWeekdayOffset)
			}
			if grid.DaysInMonth != testCase.wantDays {
				t.Fatalf("expected %d days, got %d", testCase.wantDays, grid.DaysInMonth)
			}
			if len(grid.Cells) != testCase.wantOffset+testCase.wantDays {
				t.Fatalf("expected %d cells, got %d", testCase.wantOffset+testCase.wantDays, len(grid.Cells))
			}
			if grid.Rows != testCase.wantRows {
				t.Fatalf("expected %d rows, got %d", testCase.wantRows, grid.Rows)
			}
		})
	}
}

func TestBuildMonthGrid_CellLayout(t *testing.T) {
	t.Parallel()

	grid, err := BuildMonthGrid(2024, time.January)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grid.Cells[0] != 0 {
		t.Fatalf("expected leading blank, got %d", grid.Cells[0])
	}
	for day := 1; day <= 31; day++ {
		if got := grid.Cells[day]; got != day {
			t.Fatalf("expected cell %d to hold day %d, got %d", day, day, got)
		}
	}
	if last := grid.Cells[len(grid.Cells)-1]; last != 31 {
		t.Fatalf("expected no trailing padding, last cell is %d", last)
	}
}

func TestBuildMonthGrid_RejectsOutOfRangeInput(t *testing.T) {
	t.Parallel()

	if _, err := BuildMonthGrid(2024, time.Month(0)); !errors.Is(err, ErrMonthOutOfRange) {
		t.Fatalf("expected ErrMonthOutOfRange for month 0, got %v", err)
	}
	if _, err := BuildMonthGrid(2024, time.Month(13)); !errors.Is(err, ErrMonthOutOfRange) {
		t.Fatalf("expected ErrMonthOutOfRange for month 13, got %v", err)
	}
	if _, err := BuildMonthGrid(0, time.March); !errors.Is(err, ErrYearOutOfRange) {
		t.Fatalf("expected ErrYearOutOfRange for year 0, got %v", err)
	}
}
