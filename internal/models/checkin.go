package models

import "time"

const (
	MoodGreat = "great"
	MoodGood  = "good"
	MoodOkay  = "okay"
	MoodLow   = "low"
	MoodRough = "rough"
)

// Checkin is the daily mood/energy note exchanged between partners,
// keyed on (user, date) and upserted idempotently.
type Checkin struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_checkin_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_checkin_user_date"`
	Mood      string    `gorm:"not null"`
	Energy    int       `gorm:"not null;default:0"`
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
