package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type NotificationStorage struct {
	mu            sync.RWMutex
	notifications map[string]entity.Notification
	order         []string
}

func NewNotificationStorage() *NotificationStorage {
	return &NotificationStorage{
		notifications: make(map[string]entity.Notification),
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	s.notifications[notification.ID] = *notification
	s.order = append(s.order, notification.ID)

	stored := s.notifications[notification.ID]
	return &stored, nil
}

func (s *NotificationStorage) Get(ctx context.Context, id string) (*entity.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notification, ok := s.notifications[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &notification, nil
}

// GetForUser returns the user's notifications in insertion order, with the
// shared admin-audience mailbox folded in for admins.
func (s *NotificationStorage) GetForUser(ctx context.Context, userID string, includeAdminAudience bool) ([]entity.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []entity.Notification
	for _, id := range s.order {
		notification := s.notifications[id]
		if notification.UserID == userID || (includeAdminAudience && notification.UserID == entity.AudienceAdmin) {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}

func (s *NotificationStorage) Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.notifications[notification.ID]
	if !ok {
		return nil, errorz.NotFound
	}
	notification.CreatedAt = stored.CreatedAt
	notification.UpdatedAt = time.Now()
	s.notifications[notification.ID] = *notification

	updated := s.notifications[notification.ID]
	return &updated, nil
}
