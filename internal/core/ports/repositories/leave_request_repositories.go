package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
)

// LeaveRequestReader defines read operations for sick_leave_requests
type LeaveRequestReader interface {
	// ListLeaveRequests returns the rows matching q in q's order.
	ListLeaveRequests(ctx context.Context, q domain.Query) ([]domain.LeaveRequest, error)

	// FindLeaveRequestByID returns apperrors.ErrNotFound when no row matches.
	FindLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error)

	// CountLeaveRequests counts the rows matching q's conditions.
	CountLeaveRequests(ctx context.Context, q domain.Query) (int64, error)
}

// LeaveRequestWriter defines write operations for sick_leave_requests
type LeaveRequestWriter interface {
	// SaveLeaveRequest inserts a row and returns it as stored.
	SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error)

	// UpdateLeaveRequest applies patch to the row with id, stamping updated_at with now.
	UpdateLeaveRequest(ctx context.Context, id string, patch domain.LeaveRequestPatch, now time.Time) error

	// DeleteLeaveRequest removes the row with id.
	DeleteLeaveRequest(ctx context.Context, id string) error
}

// LeaveRequestRepositoryFacade combines all leave request repository interfaces
type LeaveRequestRepositoryFacade interface {
	LeaveRequestReader
	LeaveRequestWriter
}
