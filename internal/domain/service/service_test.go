package service

import (
	"context"

	"github.com/campushub/api/internal/domain/entity"
)

// captureDispatcher records dispatched notifications instead of storing them.
type captureDispatcher struct {
	notifications []entity.Notification
}

func (d *captureDispatcher) Dispatch(ctx context.Context, notifications ...entity.Notification) error {
	d.notifications = append(d.notifications, notifications...)
	return nil
}
