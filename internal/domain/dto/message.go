package dto

import "github.com/campushub/api/internal/domain/entity"

type MessageSend struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required"`
	EventID     string `json:"eventId"`
	ClubID      string `json:"clubId"`
}

func (m MessageSend) Validate() error {
	return check(m)
}

type MessageFilter struct {
	ClubID  string
	EventID string
}

// Message is the listing shape with the sender profile denormalized in.
type Message struct {
	entity.Message
	Sender *entity.User `json:"sender"`
}

func NewMessageFromEntity(message entity.Message, sender *entity.User) Message {
	return Message{
		Message: message,
		Sender:  sender,
	}
}
