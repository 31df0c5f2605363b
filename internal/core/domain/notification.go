package domain

import "time"

// NotificationVariant selects how a notification is presented.
type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a user-visible message emitted after a mutation succeeds or fails.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	UserID      string              `json:"userID,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
