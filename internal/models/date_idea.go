package models

import "time"

type DateIdea struct {
	ID        uint      `gorm:"primaryKey"`
	OwnerID   uint      `gorm:"not null;index"`
	Title     string    `gorm:"not null"`
	Category  string    `gorm:"not null;default:any"`
	CreatedAt time.Time
}
