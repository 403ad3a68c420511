package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/api/internal/adapters/database/memory"
	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

func newBookingFixture(t *testing.T) (*BookingService, *memory.BookingStorage, *captureDispatcher, *entity.Resource) {
	t.Helper()

	bookingStorage := memory.NewBookingStorage()
	resourceStorage := memory.NewResourceStorage()
	dispatcher := &captureDispatcher{}

	resource, err := resourceStorage.Create(context.Background(), &entity.Resource{
		ID:        "res-1",
		Name:      "Main Auditorium",
		Type:      "hall",
		Available: true,
	})
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}

	svc := NewBookingService(bookingStorage, resourceStorage, dispatcher)
	return svc, bookingStorage, dispatcher, resource
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

func TestBookingCreatePending(t *testing.T) {
	svc, _, dispatcher, resource := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), "user-1", dto.BookingCreate{
		ResourceID: resource.ID,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		Purpose:    "rehearsal",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.Status != entity.BookingStatusPending {
		t.Fatalf("expected pending, got %s", booking.Status)
	}
	if len(dispatcher.notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(dispatcher.notifications))
	}
	n := dispatcher.notifications[0]
	if n.UserID != entity.AudienceAdmin {
		t.Fatalf("expected admin audience, got %q", n.UserID)
	}
	if n.Message != "New booking request for Main Auditorium" {
		t.Fatalf("unexpected message %q", n.Message)
	}
}

func TestBookingCreateOverlapRejected(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 30), EndTime: at(11, 30),
	})
	if !errors.Is(err, errorz.Conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestBookingCreateContainedIntervalRejected(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(9, 0), EndTime: at(12, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if !errors.Is(err, errorz.Conflict) {
		t.Fatalf("expected conflict for contained interval, got %v", err)
	}
}

func TestBookingCreateTouchingBoundaryAllowed(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Half-open intervals: new start == existing end is not a conflict.
	if _, err := svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(11, 0), EndTime: at(12, 0),
	}); err != nil {
		t.Fatalf("touching boundary should be allowed: %v", err)
	}
}

func TestBookingCreateRejectedBookingFreesWindow(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err = svc.UpdateStatus(ctx, first.ID, "rejected"); err != nil {
		t.Fatalf("reject booking: %v", err)
	}

	if _, err = svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("identical interval after rejection should succeed: %v", err)
	}
}

func TestBookingCreateDifferentResourcesNeverConflict(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	second, err := svc.resourceStorage.(*memory.ResourceStorage).Create(ctx, &entity.Resource{
		ID: "res-2", Name: "Lab", Type: "lab", Available: true,
	})
	if err != nil {
		t.Fatalf("create second resource: %v", err)
	}

	if _, err = svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err = svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: second.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("same window on another resource should succeed: %v", err)
	}
}

func TestBookingCreateMalformedInterval(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name       string
		start, end time.Time
	}{
		{"zero-length", at(10, 0), at(10, 0)},
		{"inverted", at(11, 0), at(10, 0)},
	} {
		_, err := svc.Create(ctx, "user-1", dto.BookingCreate{
			ResourceID: resource.ID, StartTime: tc.start, EndTime: tc.end,
		})
		if !errors.Is(err, errorz.InvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}

func TestBookingCreateUnknownResource(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t)

	_, err := svc.Create(context.Background(), "user-1", dto.BookingCreate{
		ResourceID: "missing", StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if !errors.Is(err, errorz.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingStatusTransitionNotifiesRequester(t *testing.T) {
	svc, _, dispatcher, resource := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, booking.ID, "approved")
	if err != nil {
		t.Fatalf("approve booking: %v", err)
	}
	if updated.Status != entity.BookingStatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}

	last := dispatcher.notifications[len(dispatcher.notifications)-1]
	if last.UserID != "user-1" {
		t.Fatalf("expected requester notification, got %q", last.UserID)
	}
	if last.Message != "Booking for Main Auditorium has been approved" {
		t.Fatalf("unexpected message %q", last.Message)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err = svc.UpdateStatus(ctx, booking.ID, "approved"); err != nil {
		t.Fatalf("approve booking: %v", err)
	}

	if _, err = svc.UpdateStatus(ctx, booking.ID, "rejected"); !errors.Is(err, errorz.Conflict) {
		t.Fatalf("expected conflict on second transition, got %v", err)
	}
}

func TestBookingStatusInvalidValue(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err = svc.UpdateStatus(ctx, booking.ID, "pending"); !errors.Is(err, errorz.InvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestBookingListScopes(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Create(ctx, "user-2", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(12, 0), EndTime: at(13, 0),
	}); err != nil {
		t.Fatalf("second booking: %v", err)
	}

	own, err := svc.List(ctx, "user-1", entity.RoleParticipant)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "user-1" {
		t.Fatalf("expected exactly the caller's booking, got %d", len(own))
	}
	if own[0].Resource == nil || own[0].Resource.Name != "Main Auditorium" {
		t.Fatal("expected resource populated into booking")
	}

	all, err := svc.List(ctx, "admin-1", entity.RoleAdmin)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all bookings for admin, got %d", len(all))
	}
}

// The end-to-end sequence: book, conflict, approve, book the next window.
func TestBookingScenario(t *testing.T) {
	svc, _, _, resource := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("book [10:00,11:00): %v", err)
	}
	if first.Status != entity.BookingStatusPending {
		t.Fatalf("expected pending, got %s", first.Status)
	}

	if _, err = svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(10, 30), EndTime: at(11, 30),
	}); !errors.Is(err, errorz.Conflict) {
		t.Fatalf("book [10:30,11:30): expected conflict, got %v", err)
	}

	if _, err = svc.UpdateStatus(ctx, first.ID, "approved"); err != nil {
		t.Fatalf("approve first: %v", err)
	}

	next, err := svc.Create(ctx, "user-1", dto.BookingCreate{
		ResourceID: resource.ID, StartTime: at(11, 0), EndTime: at(12, 0),
	})
	if err != nil {
		t.Fatalf("book [11:00,12:00): %v", err)
	}
	if next.Status != entity.BookingStatusPending {
		t.Fatalf("expected pending, got %s", next.Status)
	}
}
