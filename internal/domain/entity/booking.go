package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

type Booking struct {
	ID         string        `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"-"`
	ResourceID string        `gorm:"not null;type:uuid;index" json:"resourceId"`
	UserID     string        `gorm:"not null;type:uuid" json:"userId"`
	StartTime  time.Time     `gorm:"not null" json:"startTime"`
	EndTime    time.Time     `gorm:"not null" json:"endTime"`
	Purpose    string        `json:"purpose"`
	EventID    string        `json:"eventId,omitempty"`
	Status     BookingStatus `gorm:"not null" json:"status"`
}

// Overlaps reports whether the booking's [StartTime, EndTime) window
// intersects [start, end). Touching boundaries do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// Blocks reports whether the booking occupies its resource's calendar.
// Rejected bookings free their window.
func (b *Booking) Blocks() bool {
	return b.Status != BookingStatusRejected
}
