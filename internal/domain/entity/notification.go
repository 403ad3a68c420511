package entity

import "time"

type NotificationType string

const (
	NotificationTypeEventApproval  NotificationType = "event_approval"
	NotificationTypeEventStatus    NotificationType = "event_status"
	NotificationTypeBookingRequest NotificationType = "booking_request"
	NotificationTypeBookingStatus  NotificationType = "booking_status"
)

// AudienceAdmin is the shared-mailbox sentinel: notifications addressed to it
// are visible to every admin, and one admin marking it read marks it for all.
const AudienceAdmin = "admin"

type Notification struct {
	ID        string           `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"-"`
	UserID    string           `gorm:"not null;index" json:"userId"`
	Type      NotificationType `gorm:"not null" json:"type"`
	Message   string           `gorm:"not null" json:"message"`
	EventID   string           `json:"eventId,omitempty"`
	BookingID string           `json:"bookingId,omitempty"`
	Read      bool             `json:"read"`
}

// TargetedAt reports whether the notification belongs to the caller's mailbox.
func (n *Notification) TargetedAt(userID string, role Role) bool {
	if n.UserID == userID {
		return true
	}
	return n.UserID == AudienceAdmin && role == RoleAdmin
}
