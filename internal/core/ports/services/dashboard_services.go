package services

import (
	"context"

	"github.com/SscSPs/workplace_services/internal/core/domain"
)

// DashboardSvc derives the dashboard views from the three record collections.
type DashboardSvc interface {
	// RecentActivities returns at most domain.RecentActivityLimit items, newest first.
	RecentActivities(ctx context.Context) ([]domain.ActivityItem, error)

	Stats(ctx context.Context) (*domain.DashboardStats, error)

	ExpenseSummary(ctx context.Context, filter domain.ExpenseSummaryFilter) (*domain.ExpenseSummary, error)
}
