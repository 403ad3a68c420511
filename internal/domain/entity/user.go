package entity

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID         string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"-"`
	Email      string         `gorm:"not null;uniqueIndex" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	Department string         `json:"department"`
	Year       string         `json:"year"`
	Role       Role           `gorm:"not null" json:"role"`
	Clubs      pq.StringArray `gorm:"type:text[]" json:"clubs"`
}

// InClub reports whether the user already references the club.
func (u *User) InClub(clubID string) bool {
	for _, id := range u.Clubs {
		if id == clubID {
			return true
		}
	}
	return false
}
