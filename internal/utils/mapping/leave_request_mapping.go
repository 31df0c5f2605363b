package mapping

import (
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/models"
)

// ToModelLeaveRequest converts a domain LeaveRequest to a model LeaveRequest
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		ID:          d.ID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		LeaveType:   string(d.LeaveType),
		Reason:      ToNullString(d.Reason),
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveRequest converts a model LeaveRequest to a domain LeaveRequest
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		ID:          m.ID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		LeaveType:   domain.LeaveType(m.LeaveType),
		Reason:      m.Reason.String,
		Status:      domain.LeaveStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveRequestSlice converts a slice of model LeaveRequests to domain LeaveRequests
func ToDomainLeaveRequestSlice(ms []models.LeaveRequest) []domain.LeaveRequest {
	ds := make([]domain.LeaveRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveRequest(m)
	}
	return ds
}
