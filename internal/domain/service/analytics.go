package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type analyticsEventStorage interface {
	GetAll(ctx context.Context) ([]entity.Event, error)
}

type analyticsResourceStorage interface {
	GetAll(ctx context.Context) ([]entity.Resource, error)
}

type analyticsBookingStorage interface {
	GetAll(ctx context.Context) ([]entity.Booking, error)
}

type analyticsClubStorage interface {
	GetAll(ctx context.Context) ([]entity.Club, error)
}

type AnalyticsService struct {
	eventStorage    analyticsEventStorage
	resourceStorage analyticsResourceStorage
	bookingStorage  analyticsBookingStorage
	clubStorage     analyticsClubStorage

	now func() time.Time
}

func NewAnalyticsService(
	eventStorage analyticsEventStorage,
	resourceStorage analyticsResourceStorage,
	bookingStorage analyticsBookingStorage,
	clubStorage analyticsClubStorage,
) *AnalyticsService {
	return &AnalyticsService{
		eventStorage:    eventStorage,
		resourceStorage: resourceStorage,
		bookingStorage:  bookingStorage,
		clubStorage:     clubStorage,
		now:             time.Now,
	}
}

// Overview aggregates the dashboard counters over the full store.
func (s *AnalyticsService) Overview(ctx context.Context) (*dto.Analytics, error) {
	events, err := s.eventStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.resourceStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	clubs, err := s.clubStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var approved, drafts, thisMonth int
	var totalBudget float64
	for _, event := range events {
		switch event.Status {
		case entity.EventStatusApproved:
			approved++
		case entity.EventStatusDraft:
			drafts++
		}
		if event.CreatedAt.Month() == now.Month() && event.CreatedAt.Year() == now.Year() {
			thisMonth++
		}
		totalBudget += event.Budget
	}

	var available, approvedBookings int
	for _, resource := range resources {
		if resource.Available {
			available++
		}
	}
	for _, booking := range bookings {
		if booking.Status == entity.BookingStatusApproved {
			approvedBookings++
		}
	}
	utilization := "0"
	if len(resources) > 0 {
		utilization = strconv.FormatFloat(float64(approvedBookings)/float64(len(resources))*100, 'f', 1, 64)
	}

	var totalMembers int
	for _, club := range clubs {
		totalMembers += len(club.Members)
	}
	averageMembers := "0"
	if len(clubs) > 0 {
		averageMembers = strconv.FormatFloat(float64(totalMembers)/float64(len(clubs)), 'f', 1, 64)
	}

	averageBudget := "0"
	if len(events) > 0 {
		averageBudget = strconv.FormatFloat(totalBudget/float64(len(events)), 'f', 2, 64)
	}

	return &dto.Analytics{
		EventStats: dto.EventStats{
			Total:     len(events),
			Approved:  approved,
			Pending:   drafts,
			ThisMonth: thisMonth,
		},
		ResourceStats: dto.ResourceStats{
			Total:           len(resources),
			Available:       available,
			Booked:          approvedBookings,
			UtilizationRate: utilization,
		},
		ClubStats: dto.ClubStats{
			Total:          len(clubs),
			TotalMembers:   totalMembers,
			AverageMembers: averageMembers,
		},
		BudgetStats: dto.BudgetStats{
			TotalBudget:   totalBudget,
			AverageBudget: averageBudget,
		},
		RecentActivity: dto.RecentActivity{
			RecentEvents:   lastReversed(events, 5),
			RecentBookings: lastReversed(bookings, 5),
		},
	}, nil
}

// Dump returns the raw collections for the JSON export.
func (s *AnalyticsService) Dump(ctx context.Context) (*dto.AnalyticsDump, error) {
	events, err := s.eventStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.resourceStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	clubs, err := s.clubStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsDump{
		Events:     events,
		Resources:  resources,
		Bookings:   bookings,
		Clubs:      clubs,
		ExportDate: s.now(),
	}, nil
}

// CSV renders the event report: one row per event under a fixed header.
func (s *AnalyticsService) CSV(ctx context.Context) ([]byte, error) {
	events, err := s.eventStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err = w.Write([]string{"Event Title", "Status", "Type", "Budget", "Created Date"}); err != nil {
		return nil, err
	}
	for _, event := range events {
		record := []string{
			event.Title,
			string(event.Status),
			string(event.Type),
			strconv.FormatFloat(event.Budget, 'f', -1, 64),
			event.CreatedAt.Format(time.RFC3339),
		}
		if err = w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lastReversed returns up to n trailing items, newest first.
func lastReversed[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}
