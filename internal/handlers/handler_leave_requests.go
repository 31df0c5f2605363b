package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaveRequestHandler handles HTTP requests related to sick-leave requests.
type leaveRequestHandler struct {
	leaveRequestService portssvc.LeaveRequestSvcFacade
}

func newLeaveRequestHandler(svc portssvc.LeaveRequestSvcFacade) *leaveRequestHandler {
	return &leaveRequestHandler{leaveRequestService: svc}
}

// registerLeaveRequestRoutes registers routes related to leave requests.
// Mutations go through the given limiter middleware.
func registerLeaveRequestRoutes(rg *gin.RouterGroup, svc portssvc.LeaveRequestSvcFacade, limit gin.HandlerFunc) {
	h := newLeaveRequestHandler(svc)

	leave := rg.Group("/sick-leave-requests")
	{
		leave.GET("", h.listLeaveRequests)
		leave.GET("/:id", h.getLeaveRequest)
		leave.POST("", limit, h.createLeaveRequest)
		leave.PATCH("/:id", limit, h.updateLeaveRequest)
		leave.DELETE("/:id", limit, h.deleteLeaveRequest)
	}
}

// listLeaveRequests godoc
// @Summary List leave requests
// @Description Retrieves every sick-leave request, newest first
// @Tags leave-requests
// @Produce json
// @Success 200 {array} dto.LeaveRequestResponse
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to list leave requests"
// @Router /sick-leave-requests [get]
func (h *leaveRequestHandler) listLeaveRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requests, err := h.leaveRequestService.ListLeaveRequests(c.Request.Context())
	if err != nil {
		respondError(c, err, "Leave request not found", "Failed to list leave requests")
		return
	}

	logger.Debug("Leave requests listed", slog.Int("count", len(requests)))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponses(requests))
}

// getLeaveRequest godoc
// @Summary Get a leave request
// @Tags leave-requests
// @Produce json
// @Param id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /sick-leave-requests/{id} [get]
func (h *leaveRequestHandler) getLeaveRequest(c *gin.Context) {
	request, err := h.leaveRequestService.GetLeaveRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Leave request not found", "Failed to retrieve leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// createLeaveRequest godoc
// @Summary Submit a leave request
// @Description Files a new sick-leave request in pending state. Anonymous callers are allowed.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateLeaveRequestRequest true "Leave request details"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sick-leave-requests [post]
func (h *leaveRequestHandler) createLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLeaveRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.leaveRequestService.CreateLeaveRequest(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, err, "Leave request not found", "Failed to create leave request")
		return
	}

	logger.Info("Leave request created", slog.String("leave_request_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(created))
}

// updateLeaveRequest godoc
// @Summary Update a leave request
// @Description Applies a partial update. Omitted fields are left unchanged.
// @Tags leave-requests
// @Accept json
// @Param id path string true "Leave request ID"
// @Param request body dto.UpdateLeaveRequestRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sick-leave-requests/{id} [patch]
func (h *leaveRequestHandler) updateLeaveRequest(c *gin.Context) {
	var req dto.UpdateLeaveRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.leaveRequestService.UpdateLeaveRequest(c.Request.Context(), c.Param("id"), req, callerID(c)); err != nil {
		respondError(c, err, "Leave request not found", "Failed to update leave request")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteLeaveRequest godoc
// @Summary Delete a leave request
// @Tags leave-requests
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /sick-leave-requests/{id} [delete]
func (h *leaveRequestHandler) deleteLeaveRequest(c *gin.Context) {
	if err := h.leaveRequestService.DeleteLeaveRequest(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		respondError(c, err, "Leave request not found", "Failed to delete leave request")
		return
	}
	c.Status(http.StatusNoContent)
}
