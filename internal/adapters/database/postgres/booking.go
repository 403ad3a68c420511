package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/entity"
)

type BookingStorage struct {
	db *gorm.DB
}

func NewBookingStorage(db *gorm.DB) *BookingStorage {
	return &BookingStorage{
		db: db,
	}
}

func (s *BookingStorage) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	err := s.db.WithContext(ctx).Create(&booking).Error
	return booking, translateError(err)
}

func (s *BookingStorage) Get(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &booking, nil
}

func (s *BookingStorage) GetAll(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := s.db.WithContext(ctx).Order("created_at").Find(&bookings).Error
	return bookings, translateError(err)
}

func (s *BookingStorage) GetByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&bookings).Error
	return bookings, translateError(err)
}

// GetByResource is a function that gets all bookings for one resource, the
// candidate set for the conflict check.
func (s *BookingStorage) GetByResource(ctx context.Context, resourceID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := s.db.WithContext(ctx).Where("resource_id = ?", resourceID).Order("created_at").Find(&bookings).Error
	return bookings, translateError(err)
}

func (s *BookingStorage) Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	err := s.db.WithContext(ctx).Save(&booking).Error
	return booking, translateError(err)
}
