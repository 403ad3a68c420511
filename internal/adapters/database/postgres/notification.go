package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/entity"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(&notification).Error
	return notification, translateError(err)
}

func (s *NotificationStorage) Get(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &notification, nil
}

// GetForUser gets the user's notifications; for admins the shared admin
// audience is folded in.
func (s *NotificationStorage) GetForUser(ctx context.Context, userID string, includeAdminAudience bool) ([]entity.Notification, error) {
	var notifications []entity.Notification
	query := s.db.WithContext(ctx)
	if includeAdminAudience {
		query = query.Where("user_id = ? OR user_id = ?", userID, entity.AudienceAdmin)
	} else {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Order("created_at").Find(&notifications).Error
	return notifications, translateError(err)
}

func (s *NotificationStorage) Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Save(&notification).Error
	return notification, translateError(err)
}
