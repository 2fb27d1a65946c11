package models

import "time"

// DatePin is a location on the couple's shared map of date spots.
type DatePin struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     uint      `gorm:"not null;index"`
	Lat         float64   `gorm:"not null"`
	Lng         float64   `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description string
	Location    string
	Date        time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
