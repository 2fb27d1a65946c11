package models

import "time"

const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"

	DefaultAccentColor = "#FB7185"
)

// Preference holds presentation state (accent color, theme) separate from
// the calendar/period data model.
type Preference struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex"`
	AccentColor string    `gorm:"not null;default:#FB7185"`
	Theme       string    `gorm:"not null;default:system"`
	UpdatedAt   time.Time
}
