package models

import "time"

const (
	GroupFamily  = "family"
	GroupSelf    = "self"
	GroupSchool  = "school"
	GroupDates   = "dates"
	GroupTravel  = "travel"
	GroupFriends = "friends"
	GroupWork    = "work"
	GroupOthers  = "others"
)

// Event is a D-Day: a dated marker that may span multiple days and may
// recur every year on the same month/day. The countdown label shown next
// to an event is derived on read and never stored.
type Event struct {
	ID               uint       `gorm:"primaryKey"`
	OwnerID          uint       `gorm:"not null;index"`
	Title            string     `gorm:"not null"`
	Group            string     `gorm:"not null;default:others"`
	Description      string
	Date             time.Time  `gorm:"type:date;not null"`
	EndDate          *time.Time `gorm:"type:date"`
	IsAnnual         bool       `gorm:"not null;default:false"`
	ConnectedUserIDs []uint     `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
