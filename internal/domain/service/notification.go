package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	Get(ctx context.Context, id string) (*entity.Notification, error)
	GetForUser(ctx context.Context, userID string, includeAdminAudience bool) ([]entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

// Dispatcher consumes the notification outbox a workflow transition produces.
// Workflow services build the records; delivery is somebody else's problem.
type Dispatcher interface {
	Dispatch(ctx context.Context, notifications ...entity.Notification) error
}

type NotificationService struct {
	notificationStorage NotificationStorage
}

func NewNotificationService(storage NotificationStorage) *NotificationService {
	return &NotificationService{
		notificationStorage: storage,
	}
}

// Dispatch persists outbox records. Notifications are append-only; there is
// no retry or delivery guarantee beyond the store write.
func (s *NotificationService) Dispatch(ctx context.Context, notifications ...entity.Notification) error {
	for _, notification := range notifications {
		notification.ID = uuid.NewString()
		notification.Read = false
		if _, err := s.notificationStorage.Create(ctx, &notification); err != nil {
			return err
		}
	}
	return nil
}

// List returns the caller's mailbox. Admins additionally see the shared
// admin-audience mailbox.
func (s *NotificationService) List(ctx context.Context, userID string, role entity.Role) ([]entity.Notification, error) {
	return s.notificationStorage.GetForUser(ctx, userID, role == entity.RoleAdmin)
}

// MarkRead flips the read flag. Only the target user may do so; for the admin
// audience any admin may, and the flag is shared between admins.
func (s *NotificationService) MarkRead(ctx context.Context, userID string, role entity.Role, id string) (*entity.Notification, error) {
	notification, err := s.notificationStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !notification.TargetedAt(userID, role) {
		return nil, errorz.Forbidden
	}
	notification.Read = true
	return s.notificationStorage.Update(ctx, notification)
}
