package entity

import (
	"time"

	"github.com/lib/pq"
)

type Club struct {
	ID          string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Members     pq.StringArray `gorm:"type:text[]" json:"members"`
}

// HasMember reports whether the user is already in the member set.
func (c *Club) HasMember(userID string) bool {
	for _, id := range c.Members {
		if id == userID {
			return true
		}
	}
	return false
}
