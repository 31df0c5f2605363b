package dto

import "github.com/SscSPs/workplace_services/internal/core/domain"

// CreateLeaveRequestRequest defines the data needed to submit a sick-leave request.
type CreateLeaveRequestRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	LeaveType string `json:"leaveType" validate:"required,oneof=sick medical emergency personal"`
	Reason    string `json:"reason" validate:"max=2000"`
}

// UpdateLeaveRequestRequest defines a partial update; omitted fields are left unchanged.
type UpdateLeaveRequestRequest struct {
	StartDate *string `json:"startDate" validate:"omitnil,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitnil,datetime=2006-01-02"`
	LeaveType *string `json:"leaveType" validate:"omitnil,oneof=sick medical emergency personal"`
	Reason    *string `json:"reason" validate:"omitnil,max=2000"`
	Status    *string `json:"status" validate:"omitnil,oneof=pending approved rejected"`
}

// LeaveRequestResponse defines the data returned for a leave request.
type LeaveRequestResponse struct {
	ID        string  `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	LeaveType string  `json:"leaveType"`
	Reason    *string `json:"reason"`
	Status    string  `json:"status"`
	AuditResponse
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to LeaveRequestResponse DTO.
func ToLeaveRequestResponse(r *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            r.ID,
		StartDate:     formatDate(r.StartDate),
		EndDate:       formatDate(r.EndDate),
		LeaveType:     string(r.LeaveType),
		Reason:        optionalString(r.Reason),
		Status:        string(r.Status),
		AuditResponse: toAuditResponse(r.AuditFields),
	}
}

// ToLeaveRequestResponses converts a slice of domain.LeaveRequest to []LeaveRequestResponse.
func ToLeaveRequestResponses(rs []domain.LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(rs))
	for i := range rs {
		res[i] = ToLeaveRequestResponse(&rs[i])
	}
	return res
}
