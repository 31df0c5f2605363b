package domain

import "time"

// AuditFields holds the timestamps and owner shared by every stored record.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    string    `json:"userID"` // Nullable; empty when submitted anonymously
}

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Columns shared by all tables.
const (
	ColumnID        = "id"
	ColumnStatus    = "status"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnUserID    = "user_id"
)
