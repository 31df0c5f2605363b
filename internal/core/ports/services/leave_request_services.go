package services

import (
	"context"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/dto"
)

// LeaveRequestReaderSvc defines read operations for leave requests
type LeaveRequestReaderSvc interface {
	// ListLeaveRequests returns every leave request, newest first.
	ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)

	// GetLeaveRequestByID fails with apperrors.ErrNotFound for an unknown id.
	GetLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
}

// LeaveRequestWriterSvc defines write operations for leave requests
type LeaveRequestWriterSvc interface {
	// CreateLeaveRequest validates and persists a new pending request owned by userID (empty for anonymous).
	CreateLeaveRequest(ctx context.Context, req dto.CreateLeaveRequestRequest, userID string) (*domain.LeaveRequest, error)

	UpdateLeaveRequest(ctx context.Context, id string, req dto.UpdateLeaveRequestRequest, userID string) error

	DeleteLeaveRequest(ctx context.Context, id string, userID string) error
}

// LeaveRequestSvcFacade combines all leave request service interfaces
type LeaveRequestSvcFacade interface {
	LeaveRequestReaderSvc
	LeaveRequestWriterSvc
}
