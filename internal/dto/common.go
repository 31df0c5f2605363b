package dto

import (
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
)

// AuditResponse is embedded in every record response.
type AuditResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    *string   `json:"userID"` // null for anonymous submissions
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func toAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		UserID:    optionalString(a.UserID),
	}
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
