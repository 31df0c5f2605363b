package dto

import (
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ActivityItemResponse is one entry of the recent-activity feed.
type ActivityItemResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	Section   string    `json:"section"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStatsResponse defines the headline counters of the dashboard.
type DashboardStatsResponse struct {
	PendingRequests  int64           `json:"pendingRequests"`
	ApprovedItems    int64           `json:"approvedItems"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	UpcomingBookings int64           `json:"upcomingBookings"`
}

// ToActivityItemResponses converts feed items to their response DTOs.
func ToActivityItemResponses(items []domain.ActivityItem) []ActivityItemResponse {
	res := make([]ActivityItemResponse, len(items))
	for i, it := range items {
		res[i] = ActivityItemResponse{
			ID:        it.ID,
			Type:      string(it.Type),
			Title:     it.Title,
			Status:    it.Status,
			Date:      it.Date,
			Section:   it.Section,
			CreatedAt: it.CreatedAt,
		}
	}
	return res
}

// ToDashboardStatsResponse converts domain.DashboardStats to its response DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		PendingRequests:  s.PendingRequests,
		ApprovedItems:    s.ApprovedItems,
		MonthlyExpenses:  s.MonthlyExpenses,
		UpcomingBookings: s.UpcomingBookings,
	}
}
