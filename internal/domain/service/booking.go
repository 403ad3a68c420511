package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type BookingStorage interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	Get(ctx context.Context, id string) (*entity.Booking, error)
	GetAll(ctx context.Context) ([]entity.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Booking, error)
	GetByResource(ctx context.Context, resourceID string) ([]entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
}

type bookingResourceStorage interface {
	Get(ctx context.Context, id string) (*entity.Resource, error)
}

type BookingService struct {
	bookingStorage  BookingStorage
	resourceStorage bookingResourceStorage
	dispatcher      Dispatcher

	// mu serializes the conflict-check-then-insert sequence; without it two
	// concurrent requests for the same window could both pass the check.
	mu sync.Mutex
}

func NewBookingService(storage BookingStorage, resourceStorage bookingResourceStorage, dispatcher Dispatcher) *BookingService {
	return &BookingService{
		bookingStorage:  storage,
		resourceStorage: resourceStorage,
		dispatcher:      dispatcher,
	}
}

// Create reserves the [startTime, endTime) window on a resource. The request
// is rejected when the window overlaps any pending or approved booking on the
// same resource; rejected bookings do not block. Touching boundaries
// (new start == existing end) are not a conflict.
func (s *BookingService) Create(ctx context.Context, userID string, req dto.BookingCreate) (*entity.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: booking end time must be after start time", errorz.InvalidInput)
	}

	resource, err := s.resourceStorage.Get(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.bookingStorage.GetByResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Blocks() && b.Overlaps(req.StartTime, req.EndTime) {
			return nil, fmt.Errorf("%w: resource is already booked for this time slot", errorz.Conflict)
		}
	}

	booking := &entity.Booking{
		ID:         uuid.NewString(),
		ResourceID: req.ResourceID,
		UserID:     userID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
		EventID:    req.EventID,
		Status:     entity.BookingStatusPending,
	}
	created, err := s.bookingStorage.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	err = s.dispatcher.Dispatch(ctx, entity.Notification{
		UserID:    entity.AudienceAdmin,
		Type:      entity.NotificationTypeBookingRequest,
		Message:   fmt.Sprintf("New booking request for %s", resource.Name),
		BookingID: created.ID,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// List returns the caller's bookings, or every booking for admins, with the
// resource denormalized into each item.
func (s *BookingService) List(ctx context.Context, userID string, role entity.Role) ([]dto.Booking, error) {
	var (
		bookings []entity.Booking
		err      error
	)
	if role == entity.RoleAdmin {
		bookings, err = s.bookingStorage.GetAll(ctx)
	} else {
		bookings, err = s.bookingStorage.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resource, errGet := s.resourceStorage.Get(ctx, booking.ResourceID)
		if errGet != nil {
			resource = nil
		}
		result = append(result, dto.NewBookingFromEntity(booking, resource))
	}
	return result, nil
}

// UpdateStatus moves a pending booking to approved or rejected and tells the
// requester. Both outcomes are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) (*entity.Booking, error) {
	next := entity.BookingStatus(status)
	if next != entity.BookingStatusApproved && next != entity.BookingStatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", errorz.InvalidInput)
	}

	booking, err := s.bookingStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking status is already %s", errorz.Conflict, booking.Status)
	}

	booking.Status = next
	updated, err := s.bookingStorage.Update(ctx, booking)
	if err != nil {
		return nil, err
	}

	resourceName := "resource"
	if resource, errGet := s.resourceStorage.Get(ctx, updated.ResourceID); errGet == nil {
		resourceName = resource.Name
	}

	err = s.dispatcher.Dispatch(ctx, entity.Notification{
		UserID:    updated.UserID,
		Type:      entity.NotificationTypeBookingStatus,
		Message:   fmt.Sprintf("Booking for %s has been %s", resourceName, updated.Status),
		BookingID: updated.ID,
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
