package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/api/internal/adapters/database/memory"
	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

func newMessageFixture(t *testing.T) *MessageService {
	t.Helper()

	userStorage := memory.NewUserStorage()
	for _, u := range []entity.User{
		{ID: "user-1", Email: "a@campus.edu", Name: "Alice"},
		{ID: "user-2", Email: "b@campus.edu", Name: "Bob"},
	} {
		u := u
		if _, err := userStorage.Create(context.Background(), &u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	return NewMessageService(memory.NewMessageStorage(), userStorage)
}

func TestMessageSendAndList(t *testing.T) {
	svc := newMessageFixture(t)
	ctx := context.Background()

	sent, err := svc.Send(ctx, "user-1", dto.MessageSend{RecipientID: "user-2", Content: "hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent.SenderID != "user-1" || sent.ID == "" {
		t.Fatalf("unexpected message %+v", sent)
	}

	// Both ends of the conversation see it; a third party does not.
	for _, userID := range []string{"user-1", "user-2"} {
		list, err := svc.List(ctx, userID, dto.MessageFilter{})
		if err != nil {
			t.Fatalf("list as %s: %v", userID, err)
		}
		if len(list) != 1 || list[0].Content != "hi" {
			t.Fatalf("list as %s: unexpected %+v", userID, list)
		}
		if list[0].Sender == nil || list[0].Sender.Name != "Alice" {
			t.Fatal("expected sender profile populated")
		}
	}

	other, err := svc.List(ctx, "user-3", dto.MessageFilter{})
	if err != nil {
		t.Fatalf("list as outsider: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("outsider should see nothing, got %d", len(other))
	}
}

func TestMessageSendMissingContent(t *testing.T) {
	svc := newMessageFixture(t)

	if _, err := svc.Send(context.Background(), "user-1", dto.MessageSend{RecipientID: "user-2"}); !errors.Is(err, errorz.InvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMessageListThreadFilters(t *testing.T) {
	svc := newMessageFixture(t)
	ctx := context.Background()

	if _, err := svc.Send(ctx, "user-1", dto.MessageSend{RecipientID: "user-2", Content: "general"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(ctx, "user-1", dto.MessageSend{RecipientID: "user-2", Content: "club", ClubID: "club-1"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(ctx, "user-1", dto.MessageSend{RecipientID: "user-2", Content: "event", EventID: "event-1"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	club, err := svc.List(ctx, "user-2", dto.MessageFilter{ClubID: "club-1"})
	if err != nil {
		t.Fatalf("list club thread: %v", err)
	}
	if len(club) != 1 || club[0].Content != "club" {
		t.Fatalf("unexpected club thread %+v", club)
	}

	event, err := svc.List(ctx, "user-2", dto.MessageFilter{EventID: "event-1"})
	if err != nil {
		t.Fatalf("list event thread: %v", err)
	}
	if len(event) != 1 || event[0].Content != "event" {
		t.Fatalf("unexpected event thread %+v", event)
	}
}
