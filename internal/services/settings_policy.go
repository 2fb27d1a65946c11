package services

import (
	"errors"

	"github.com/calple/calple/internal/models"
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange = errors.New("period length out of range")
)

func IsValidCycleLength(value int) bool {
	return value >= models.MinCycleLength && value <= models.MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= models.MinPeriodLength && value <= models.MaxPeriodLength
}

// ValidateCycleSettings checks a wholesale settings replacement.
func ValidateCycleSettings(cycleLength int, periodLength int) error {
	if !IsValidCycleLength(cycleLength) {
		return ErrCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(periodLength) {
		return ErrPeriodLengthOutOfRange
	}
	return nil
}
