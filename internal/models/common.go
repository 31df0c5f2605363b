package models

import (
	"database/sql"
	"time"
)

// AuditFields are the bookkeeping columns present on every table.
type AuditFields struct {
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	UserID    sql.NullString `db:"user_id"` // NULL for anonymous submissions
}
