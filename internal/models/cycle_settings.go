package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 15
	MaxCycleLength  = 60
	MinPeriodLength = 1
	MaxPeriodLength = 14
)

// CycleSettings is a per-user singleton, read on load and replaced
// wholesale on update.
type CycleSettings struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex"`
	CycleLength  int       `gorm:"not null;default:28"`
	PeriodLength int       `gorm:"not null;default:5"`
	UpdatedAt    time.Time
}
