package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/utils/validation"
	"github.com/google/uuid"
)

type leaveRequestService struct {
	BaseService
	repo portsrepo.LeaveRequestRepositoryFacade
}

var _ portssvc.LeaveRequestSvcFacade = (*leaveRequestService)(nil)

// NewLeaveRequestService creates the sick-leave request service.
func NewLeaveRequestService(repo portsrepo.LeaveRequestRepositoryFacade, opts ...Option) portssvc.LeaveRequestSvcFacade {
	return &leaveRequestService{BaseService: newBaseService(opts...), repo: repo}
}

func (s *leaveRequestService) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	q := domain.NewQuery()
	return cached(s.cache, listKey(keyLeaveRequests, q), func() ([]domain.LeaveRequest, error) {
		reqs, err := s.repo.ListLeaveRequests(ctx, q)
		if err != nil {
			s.LogError(ctx, err, "Failed to list leave requests")
			return nil, err
		}
		return reqs, nil
	})
}

func (s *leaveRequestService) GetLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	return cached(s.cache, idKey(keyLeaveRequests, id), func() (*domain.LeaveRequest, error) {
		req, err := s.repo.FindLeaveRequestByID(ctx, id)
		if err != nil {
			s.logFailure(ctx, err, "Failed to find leave request", slog.String("leave_request_id", id))
			return nil, err
		}
		return req, nil
	})
}

func (s *leaveRequestService) CreateLeaveRequest(ctx context.Context, req dto.CreateLeaveRequestRequest, userID string) (*domain.LeaveRequest, error) {
	created, err := s.createLeaveRequest(ctx, req, userID)
	if err := s.completeMutation(ctx, leaveCreated, userID, err, leaveInvalidations); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Leave request created", slog.String("leave_request_id", created.ID))
	return created, nil
}

func (s *leaveRequestService) createLeaveRequest(ctx context.Context, req dto.CreateLeaveRequestRequest, userID string) (*domain.LeaveRequest, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkDateRange(start, end, "endDate"); err != nil {
		return nil, err
	}

	now := s.now()
	return s.repo.SaveLeaveRequest(ctx, domain.LeaveRequest{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
		LeaveType: domain.LeaveType(req.LeaveType),
		Reason:    req.Reason,
		Status:    domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
			UserID:    userID,
		},
	})
}

func (s *leaveRequestService) UpdateLeaveRequest(ctx context.Context, id string, req dto.UpdateLeaveRequestRequest, userID string) error {
	err := s.updateLeaveRequest(ctx, id, req)
	return s.completeMutation(ctx, leaveUpdated, userID, err, leaveInvalidations)
}

func (s *leaveRequestService) updateLeaveRequest(ctx context.Context, id string, req dto.UpdateLeaveRequestRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	patch, err := toLeaveRequestPatch(req)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errEmptyPatch
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := s.repo.FindLeaveRequestByID(ctx, id)
		if err != nil {
			return err
		}
		start, end := current.StartDate, current.EndDate
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.EndDate != nil {
			end = *patch.EndDate
		}
		if err := checkDateRange(start, end, "endDate"); err != nil {
			return err
		}
	}

	return s.repo.UpdateLeaveRequest(ctx, id, patch, s.now())
}

func (s *leaveRequestService) DeleteLeaveRequest(ctx context.Context, id string, userID string) error {
	err := s.repo.DeleteLeaveRequest(ctx, id)
	return s.completeMutation(ctx, leaveDeleted, userID, err, leaveInvalidations)
}

func toLeaveRequestPatch(req dto.UpdateLeaveRequestRequest) (domain.LeaveRequestPatch, error) {
	var patch domain.LeaveRequestPatch
	var err error
	if patch.StartDate, err = parseOptionalDate("startDate", req.StartDate); err != nil {
		return patch, err
	}
	if patch.EndDate, err = parseOptionalDate("endDate", req.EndDate); err != nil {
		return patch, err
	}
	if req.LeaveType != nil {
		t := domain.LeaveType(*req.LeaveType)
		patch.LeaveType = &t
	}
	patch.Reason = req.Reason
	if req.Status != nil {
		st := domain.LeaveStatus(*req.Status)
		patch.Status = &st
	}
	return patch, nil
}
