package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: svc}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/recent-activities", h.getRecentActivities)
		dashboard.GET("/stats", h.getStats)
	}
}

// getRecentActivities godoc
// @Summary Recent activity feed
// @Description The newest four records across leave requests, expenses and bookings
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.ActivityItemResponse
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /dashboard/recent-activities [get]
func (h *dashboardHandler) getRecentActivities(c *gin.Context) {
	items, err := h.dashboardService.RecentActivities(c.Request.Context())
	if err != nil {
		respondError(c, err, "Activity not found", "Failed to load recent activities")
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityItemResponses(items))
}

// getStats godoc
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Stats not found", "Failed to load dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
