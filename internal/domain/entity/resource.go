package entity

import "time"

type Resource struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"not null" json:"type"`
	Description string    `json:"description"`
	Capacity    *int      `json:"capacity"`
	Available   bool      `json:"available"`
}
