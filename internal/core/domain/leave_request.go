package domain

import "time"

// LeaveType is the reason category of a leave request.
type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeaveMedical   LeaveType = "medical"
	LeaveEmergency LeaveType = "emergency"
	LeavePersonal  LeaveType = "personal"
)

// LeaveStatus is the approval state of a leave request. Transitions happen out-of-band.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Columns of sick_leave_requests.
const (
	ColumnLeaveStartDate = "start_date"
	ColumnLeaveEndDate   = "end_date"
	ColumnLeaveType      = "leave_type"
	ColumnLeaveReason    = "reason"
)

// LeaveRequest is a sick-leave submission.
type LeaveRequest struct {
	ID        string      `json:"id"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	LeaveType LeaveType   `json:"leaveType"`
	Reason    string      `json:"reason"` // Nullable
	Status    LeaveStatus `json:"status"`
	AuditFields
}

// LeaveRequestPatch carries the fields of a partial update; nil means unchanged.
type LeaveRequestPatch struct {
	StartDate *time.Time
	EndDate   *time.Time
	LeaveType *LeaveType
	Reason    *string
	Status    *LeaveStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p LeaveRequestPatch) IsEmpty() bool {
	return p.StartDate == nil && p.EndDate == nil && p.LeaveType == nil && p.Reason == nil && p.Status == nil
}
