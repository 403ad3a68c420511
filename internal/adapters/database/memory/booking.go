package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type BookingStorage struct {
	mu       sync.RWMutex
	bookings map[string]entity.Booking
	order    []string
}

func NewBookingStorage() *BookingStorage {
	return &BookingStorage{
		bookings: make(map[string]entity.Booking),
	}
}

func (s *BookingStorage) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	s.bookings[booking.ID] = *booking
	s.order = append(s.order, booking.ID)

	stored := s.bookings[booking.ID]
	return &stored, nil
}

func (s *BookingStorage) Get(ctx context.Context, id string) (*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &booking, nil
}

func (s *BookingStorage) GetAll(ctx context.Context) ([]entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]entity.Booking, 0, len(s.order))
	for _, id := range s.order {
		bookings = append(bookings, s.bookings[id])
	}
	return bookings, nil
}

func (s *BookingStorage) GetByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []entity.Booking
	for _, id := range s.order {
		if booking := s.bookings[id]; booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *BookingStorage) GetByResource(ctx context.Context, resourceID string) ([]entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []entity.Booking
	for _, id := range s.order {
		if booking := s.bookings[id]; booking.ResourceID == resourceID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *BookingStorage) Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[booking.ID]
	if !ok {
		return nil, errorz.NotFound
	}
	booking.CreatedAt = stored.CreatedAt
	booking.UpdatedAt = time.Now()
	s.bookings[booking.ID] = *booking

	updated := s.bookings[booking.ID]
	return &updated, nil
}
