package entity

import (
	"time"

	"github.com/lib/pq"
)

type EventStatus string

const (
	EventStatusDraft    EventStatus = "draft"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

type EventType string

const (
	EventTypeSingleDay EventType = "single-day"
	EventTypeMultiDay  EventType = "multi-day"
)

type Event struct {
	ID               string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `json:"description"`
	StartDate        time.Time      `gorm:"not null" json:"startDate"`
	EndDate          time.Time      `gorm:"not null" json:"endDate"`
	Type             EventType      `gorm:"not null" json:"type"`
	ClubID           string         `json:"club,omitempty"`
	Budget           float64        `json:"budget"`
	Collaborators    pq.StringArray `gorm:"type:text[]" json:"collaborators"`
	OrganizerID      string         `gorm:"not null;type:uuid" json:"organizerId"`
	Status           EventStatus    `gorm:"not null" json:"status"`
	ParticipantCount int            `json:"participantCount"`
}

// VisibleTo applies the role-based listing policy: participants see approved
// events only, organizers additionally see their own, admins see everything.
func (e *Event) VisibleTo(userID string, role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleOrganizer:
		return e.Status == EventStatusApproved || e.OrganizerID == userID
	default:
		return e.Status == EventStatusApproved
	}
}
