package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type MessageStorage interface {
	Create(ctx context.Context, message *entity.Message) (*entity.Message, error)
	GetByParticipant(ctx context.Context, userID string) ([]entity.Message, error)
}

type messageUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type MessageService struct {
	messageStorage MessageStorage
	userStorage    messageUserStorage
}

func NewMessageService(storage MessageStorage, userStorage messageUserStorage) *MessageService {
	return &MessageService{
		messageStorage: storage,
		userStorage:    userStorage,
	}
}

// Send appends a message. Messages have no lifecycle beyond creation.
func (s *MessageService) Send(ctx context.Context, senderID string, req dto.MessageSend) (*entity.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		EventID:     req.EventID,
		ClubID:      req.ClubID,
	}
	return s.messageStorage.Create(ctx, message)
}

// List returns messages the caller sent or received, optionally narrowed to a
// club or event thread, with the sender profile denormalized in.
func (s *MessageService) List(ctx context.Context, userID string, filter dto.MessageFilter) ([]dto.Message, error) {
	messages, err := s.messageStorage.GetByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.Message, 0, len(messages))
	for _, message := range messages {
		if filter.ClubID != "" && message.ClubID != filter.ClubID {
			continue
		}
		if filter.EventID != "" && message.EventID != filter.EventID {
			continue
		}
		sender, errGet := s.userStorage.Get(ctx, message.SenderID)
		if errGet != nil {
			sender = nil
		}
		result = append(result, dto.NewMessageFromEntity(message, sender))
	}
	return result, nil
}
