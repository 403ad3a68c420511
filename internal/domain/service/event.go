package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventService struct {
	eventStorage EventStorage
	dispatcher   Dispatcher
}

func NewEventService(storage EventStorage, dispatcher Dispatcher) *EventService {
	return &EventService{
		eventStorage: storage,
		dispatcher:   dispatcher,
	}
}

// Create starts the approval workflow. Admin-created events skip the draft
// stage; everything else enters draft and asks the admin mailbox for review.
func (s *EventService) Create(ctx context.Context, organizerID string, role entity.Role, req dto.EventCreate) (*entity.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := entity.EventStatusDraft
	if role == entity.RoleAdmin {
		status = entity.EventStatusApproved
	}

	eventType := entity.EventTypeSingleDay
	if entity.EventType(req.Type) == entity.EventTypeMultiDay {
		eventType = entity.EventTypeMultiDay
	}

	event := &entity.Event{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Type:          eventType,
		ClubID:        req.Club,
		Budget:        req.Budget,
		Collaborators: pq.StringArray(req.Collaborators),
		OrganizerID:   organizerID,
		Status:        status,
	}
	if event.Collaborators == nil {
		event.Collaborators = pq.StringArray{}
	}

	created, err := s.eventStorage.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	if created.Status == entity.EventStatusDraft {
		err = s.dispatcher.Dispatch(ctx, entity.Notification{
			UserID:  entity.AudienceAdmin,
			Type:    entity.NotificationTypeEventApproval,
			Message: fmt.Sprintf("New event %q requires approval", created.Title),
			EventID: created.ID,
		})
		if err != nil {
			return nil, err
		}
	}

	return created, nil
}

// List applies the role visibility policy first, then the optional filters as
// an intersection.
func (s *EventService) List(ctx context.Context, userID string, role entity.Role, filter dto.EventFilter) ([]entity.Event, error) {
	all, err := s.eventStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]entity.Event, 0, len(all))
	for _, event := range all {
		if !event.VisibleTo(userID, role) {
			continue
		}
		if filter.Status != "" && event.Status != entity.EventStatus(filter.Status) {
			continue
		}
		if filter.Club != "" && event.ClubID != filter.Club {
			continue
		}
		if filter.Type != "" && event.Type != entity.EventType(filter.Type) {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.eventStorage.Get(ctx, id)
}

// Update merges a partial payload into the stored event. Only the owning
// organizer or an admin may update; id and organizer are immutable.
func (s *EventService) Update(ctx context.Context, actorID string, role entity.Role, id string, req dto.EventUpdate) (*entity.Event, error) {
	event, err := s.eventStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != entity.RoleAdmin && event.OrganizerID != actorID {
		return nil, errorz.Forbidden
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Type != nil && entity.EventType(*req.Type) != "" {
		event.Type = entity.EventType(*req.Type)
	}
	if req.Club != nil {
		event.ClubID = *req.Club
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return nil, fmt.Errorf("%w: budget must be non-negative", errorz.InvalidInput)
		}
		event.Budget = *req.Budget
	}
	if req.Collaborators != nil {
		event.Collaborators = pq.StringArray(*req.Collaborators)
	}

	return s.eventStorage.Update(ctx, event)
}

// UpdateStatus moves a draft event to approved or rejected and tells the
// organizer. Both outcomes are terminal.
func (s *EventService) UpdateStatus(ctx context.Context, id string, status string) (*entity.Event, error) {
	next := entity.EventStatus(status)
	if next != entity.EventStatusApproved && next != entity.EventStatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", errorz.InvalidInput)
	}

	event, err := s.eventStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status != entity.EventStatusDraft {
		return nil, fmt.Errorf("%w: event status is already %s", errorz.Conflict, event.Status)
	}

	event.Status = next
	updated, err := s.eventStorage.Update(ctx, event)
	if err != nil {
		return nil, err
	}

	err = s.dispatcher.Dispatch(ctx, entity.Notification{
		UserID:  updated.OrganizerID,
		Type:    entity.NotificationTypeEventStatus,
		Message: fmt.Sprintf("Event %q has been %s", updated.Title, updated.Status),
		EventID: updated.ID,
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an event. Only the owning organizer or an admin may delete.
func (s *EventService) Delete(ctx context.Context, actorID string, role entity.Role, id string) error {
	event, err := s.eventStorage.Get(ctx, id)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin && event.OrganizerID != actorID {
		return errorz.Forbidden
	}
	return s.eventStorage.Delete(ctx, id)
}
