package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgStoreUnavailable = "record store unavailable"

// respondError maps a service error onto an HTTP status. notFound is the
// message for apperrors.ErrNotFound and fallback the one for unexpected errors.
func respondError(c *gin.Context, err error, notFound, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verrs apperrors.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: verrs})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFound)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound})
	case errors.Is(err, apperrors.ErrFetch):
		logger.Error("Record store request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: msgStoreUnavailable})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// bindJSON decodes the body into req, answering 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// callerID is the authenticated user id, or empty for anonymous callers.
func callerID(c *gin.Context) string {
	userID, _ := middleware.GetUserIDFromContext(c)
	return userID
}
