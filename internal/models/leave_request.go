package models

import (
	"database/sql"
	"time"
)

// LeaveRequest is a row of sick_leave_requests.
type LeaveRequest struct {
	ID        string         `db:"id"`
	StartDate time.Time      `db:"start_date"`
	EndDate   time.Time      `db:"end_date"`
	LeaveType string         `db:"leave_type"`
	Reason    sql.NullString `db:"reason"`
	Status    string         `db:"status"`
	AuditFields
}
