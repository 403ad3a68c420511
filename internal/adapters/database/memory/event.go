package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type EventStorage struct {
	mu     sync.RWMutex
	events map[string]entity.Event
	order  []string
}

func NewEventStorage() *EventStorage {
	return &EventStorage{
		events: make(map[string]entity.Event),
	}
}

func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	s.events[event.ID] = *event
	s.order = append(s.order, event.ID)

	stored := s.events[event.ID]
	return &stored, nil
}

func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &event, nil
}

// GetAll returns events in insertion order.
func (s *EventStorage) GetAll(ctx context.Context) ([]entity.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]entity.Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	return events, nil
}

func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.events[event.ID]
	if !ok {
		return nil, errorz.NotFound
	}
	event.CreatedAt = stored.CreatedAt
	event.UpdatedAt = time.Now()
	s.events[event.ID] = *event

	updated := s.events[event.ID]
	return &updated, nil
}

func (s *EventStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return errorz.NotFound
	}
	delete(s.events, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
