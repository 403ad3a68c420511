package entity

import "time"

type Message struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
	SenderID    string    `gorm:"not null;type:uuid;index" json:"senderId"`
	RecipientID string    `gorm:"not null;type:uuid;index" json:"recipientId"`
	Content     string    `gorm:"not null" json:"content"`
	EventID     string    `json:"eventId,omitempty"`
	ClubID      string    `json:"clubId,omitempty"`
	Read        bool      `json:"read"`
}
