package dto

import (
	"time"

	"github.com/campushub/api/internal/domain/entity"
)

type EventStats struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	ThisMonth int `json:"thisMonth"`
}

type ResourceStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`

	// Percentage with one decimal, "0" when no resources exist.
	UtilizationRate string `json:"utilizationRate"`
}

type ClubStats struct {
	Total          int    `json:"total"`
	TotalMembers   int    `json:"totalMembers"`
	AverageMembers string `json:"averageMembers"`
}

type BudgetStats struct {
	TotalBudget   float64 `json:"totalBudget"`
	AverageBudget string  `json:"averageBudget"`
}

type RecentActivity struct {
	RecentEvents   []entity.Event   `json:"recentEvents"`
	RecentBookings []entity.Booking `json:"recentBookings"`
}

type Analytics struct {
	EventStats     EventStats     `json:"eventStats"`
	ResourceStats  ResourceStats  `json:"resourceStats"`
	ClubStats      ClubStats      `json:"clubStats"`
	BudgetStats    BudgetStats    `json:"budgetStats"`
	RecentActivity RecentActivity `json:"recentActivity"`
}

// AnalyticsDump is the JSON export payload.
type AnalyticsDump struct {
	Events     []entity.Event    `json:"events"`
	Resources  []entity.Resource `json:"resources"`
	Bookings   []entity.Booking  `json:"bookings"`
	Clubs      []entity.Club     `json:"clubs"`
	ExportDate time.Time         `json:"exportDate"`
}
