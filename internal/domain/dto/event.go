package dto

import "time"

type EventCreate struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required"`
	Type          string    `json:"type"`
	Club          string    `json:"club"`
	Budget        float64   `json:"budget" validate:"gte=0"`
	Collaborators []string  `json:"collaborators"`
}

func (e EventCreate) Validate() error {
	return check(e)
}

// EventUpdate is a partial update: nil fields keep their stored value.
// Identity and ownership are never updatable.
type EventUpdate struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Type          *string    `json:"type"`
	Club          *string    `json:"club"`
	Budget        *float64   `json:"budget"`
	Collaborators *[]string  `json:"collaborators"`
}

type EventFilter struct {
	Status string
	Club   string
	Type   string
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

func (s StatusUpdate) Validate() error {
	return check(s)
}
