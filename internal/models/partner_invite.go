package models

import "time"

// PartnerInvite is a pending connection code. Redeeming it links the two
// users symmetrically and removes the invite.
type PartnerInvite struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex"`
	Code      string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}
