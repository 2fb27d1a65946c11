package services

import (
	"errors"
	"time"
)

const daysPerWeek = 7

var (
	ErrMonthOutOfRange = errors.New("month out of range")
	ErrYearOutOfRange  = errors.New("year out of range")
)

// MonthGrid is the cell layout of one viewed month. Cells holds
// FirstWeekdayOffset leading blanks (value 0) followed by the day numbers
// 1..DaysInMonth, with no trailing padding.
type MonthGrid struct {
	Cells              []int
	Rows               int
	FirstWeekdayOffset int
	DaysInMonth        int
}

// BuildMonthGrid lays out the viewed month. Months are 1..12 (Go's
// time.Month convention); weekday 0 is Sunday. Out-of-range input is a
// programming-contract violation, not a user-facing condition.
func BuildMonthGrid(year int, month time.Month) (MonthGrid, error) {
	if month < time.January || month > time.December {
		return MonthGrid{}, ErrMonthOutOfRange
	}
	if year < 1 || year > 9999 {
		return MonthGrid{}, ErrYearOutOfRange
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(monthStart.Weekday())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	cells := make([]int, 0, offset+daysInMonth)
	for blank := 0; blank < offset; blank++ {
		cells = append(cells, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, day)
	}

	return MonthGrid{
		Cells:              cells,
		Rows:               (offset + daysInMonth + daysPerWeek - 1) / daysPerWeek,
		FirstWeekdayOffset: offset,
		DaysInMonth:        daysInMonth,
	}, nil
}
