package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/entity"
)

type MessageStorage struct {
	db *gorm.DB
}

func NewMessageStorage(db *gorm.DB) *MessageStorage {
	return &MessageStorage{
		db: db,
	}
}

func (s *MessageStorage) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	err := s.db.WithContext(ctx).Create(&message).Error
	return message, translateError(err)
}

func (s *MessageStorage) GetByParticipant(ctx context.Context, userID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := s.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at").
		Find(&messages).Error
	return messages, translateError(err)
}
