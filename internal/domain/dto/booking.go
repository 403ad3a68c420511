package dto

import (
	"time"

	"github.com/campushub/api/internal/domain/entity"
)

type BookingCreate struct {
	ResourceID string    `json:"resourceId" validate:"required"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required"`
	Purpose    string    `json:"purpose"`
	EventID    string    `json:"eventId"`
}

func (b BookingCreate) Validate() error {
	return check(b)
}

// Booking is the listing shape with the resource denormalized in.
type Booking struct {
	entity.Booking
	Resource *entity.Resource `json:"resource"`
}

func NewBookingFromEntity(booking entity.Booking, resource *entity.Resource) Booking {
	return Booking{
		Booking:  booking,
		Resource: resource,
	}
}
