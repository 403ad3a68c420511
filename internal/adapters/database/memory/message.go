package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/entity"
)

type MessageStorage struct {
	mu       sync.RWMutex
	messages map[string]entity.Message
	order    []string
}

func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[string]entity.Message),
	}
}

func (s *MessageStorage) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now
	s.messages[message.ID] = *message
	s.order = append(s.order, message.ID)

	stored := s.messages[message.ID]
	return &stored, nil
}

// GetByParticipant returns messages the user sent or received, in insertion order.
func (s *MessageStorage) GetByParticipant(ctx context.Context, userID string) ([]entity.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var messages []entity.Message
	for _, id := range s.order {
		if message := s.messages[id]; message.SenderID == userID || message.RecipientID == userID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}
