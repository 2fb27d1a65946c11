package models

import "time"

// PeriodDay is one logged calendar day. Marking a day as a period day and
// logging symptoms/mood/activities on it are independent axes: a day with
// IsPeriod=false and a non-empty log is valid.
type PeriodDay struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_period_user_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_period_user_date"`
	IsPeriod   bool      `gorm:"not null;default:false"`
	Symptoms   []string  `gorm:"serializer:json"`
	Mood       []string  `gorm:"serializer:json"`
	Activities []string  `gorm:"serializer:json"`
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
