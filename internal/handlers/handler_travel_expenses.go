package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/SscSPs/workplace_services/internal/reports"
	"github.com/gin-gonic/gin"
)

const (
	msgExpenseNotFound = "Travel expense not found"
	msgSummaryFailed   = "Failed to build expense summary"
)

// travelExpenseHandler handles HTTP requests related to travel expenses and their summary.
type travelExpenseHandler struct {
	travelExpenseService portssvc.TravelExpenseSvcFacade
	dashboardService     portssvc.DashboardSvc
	now                  func() time.Time
}

func newTravelExpenseHandler(es portssvc.TravelExpenseSvcFacade, ds portssvc.DashboardSvc) *travelExpenseHandler {
	return &travelExpenseHandler{
		travelExpenseService: es,
		dashboardService:     ds,
		now:                  time.Now,
	}
}

// registerTravelExpenseRoutes registers routes related to travel expenses.
func registerTravelExpenseRoutes(rg *gin.RouterGroup, es portssvc.TravelExpenseSvcFacade, ds portssvc.DashboardSvc, limit gin.HandlerFunc) {
	h := newTravelExpenseHandler(es, ds)

	expenses := rg.Group("/travel-expenses")
	{
		expenses.GET("", h.listTravelExpenses)
		expenses.POST("", limit, h.createTravelExpense)

		expenses.GET("/summary", h.getExpenseSummary)
		expenses.GET("/summary/report.pdf", h.getExpenseSummaryPDF)
		expenses.GET("/summary/chart.png", h.getExpenseSummaryChart)

		expenses.GET("/:id", h.getTravelExpense)
		expenses.PATCH("/:id", limit, h.updateTravelExpense)
		expenses.DELETE("/:id", limit, h.deleteTravelExpense)
	}
}

// listTravelExpenses godoc
// @Summary List travel expenses
// @Description Searches destination and purpose (case-insensitive) and returns one page of 10, newest first
// @Tags travel-expenses
// @Produce json
// @Param search query string false "Substring of destination or purpose"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.ListTravelExpensesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid page"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /travel-expenses [get]
func (h *travelExpenseHandler) listTravelExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTravelExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.travelExpenseService.PageTravelExpenses(c.Request.Context(), params.Search, params.Page)
	if err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to list travel expenses")
		return
	}

	logger.Debug("Travel expenses listed",
		slog.String("search", params.Search),
		slog.Int("page", page.Page),
		slog.Int("total", page.TotalCount))
	c.JSON(http.StatusOK, dto.ToListTravelExpensesResponse(page))
}

// getTravelExpense godoc
// @Summary Get a travel expense
// @Tags travel-expenses
// @Produce json
// @Param id path string true "Travel expense ID"
// @Success 200 {object} dto.TravelExpenseResponse
// @Failure 404 {object} dto.ErrorResponse "Travel expense not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /travel-expenses/{id} [get]
func (h *travelExpenseHandler) getTravelExpense(c *gin.Context) {
	expense, err := h.travelExpenseService.GetTravelExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to retrieve travel expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelExpenseResponse(expense))
}

// createTravelExpense godoc
// @Summary Submit a travel expense
// @Tags travel-expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateTravelExpenseRequest true "Expense details"
// @Success 201 {object} dto.TravelExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /travel-expenses [post]
func (h *travelExpenseHandler) createTravelExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTravelExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.travelExpenseService.CreateTravelExpense(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to create travel expense")
		return
	}

	logger.Info("Travel expense created", slog.String("travel_expense_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToTravelExpenseResponse(created))
}

// updateTravelExpense godoc
// @Summary Update a travel expense
// @Tags travel-expenses
// @Accept json
// @Param id path string true "Travel expense ID"
// @Param expense body dto.UpdateTravelExpenseRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Travel expense not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /travel-expenses/{id} [patch]
func (h *travelExpenseHandler) updateTravelExpense(c *gin.Context) {
	var req dto.UpdateTravelExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.travelExpenseService.UpdateTravelExpense(c.Request.Context(), c.Param("id"), req, callerID(c)); err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to update travel expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteTravelExpense godoc
// @Summary Delete a travel expense
// @Tags travel-expenses
// @Param id path string true "Travel expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Travel expense not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /travel-expenses/{id} [delete]
func (h *travelExpenseHandler) deleteTravelExpense(c *gin.Context) {
	if err := h.travelExpenseService.DeleteTravelExpense(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to delete travel expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// getExpenseSummary godoc
// @Summary Expense summary
// @Description Totals, remaining budget, and breakdowns by category and month
// @Tags travel-expenses
// @Produce json
// @Param period query string false "week, month, quarter, year or all" default(all)
// @Param type query string false "Expense type"
// @Param minAmount query string false "Minimum amount"
// @Param maxAmount query string false "Maximum amount"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /travel-expenses/summary [get]
func (h *travelExpenseHandler) getExpenseSummary(c *gin.Context) {
	summary, _, ok := h.loadSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}

// getExpenseSummaryPDF godoc
// @Summary Expense summary report
// @Description The expense summary rendered as a PDF document
// @Tags travel-expenses
// @Produce application/pdf
// @Param period query string false "week, month, quarter, year or all" default(all)
// @Param type query string false "Expense type"
// @Param minAmount query string false "Minimum amount"
// @Param maxAmount query string false "Maximum amount"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /travel-expenses/summary/report.pdf [get]
func (h *travelExpenseHandler) getExpenseSummaryPDF(c *gin.Context) {
	summary, filter, ok := h.loadSummary(c)
	if !ok {
		return
	}

	pdf, err := reports.ExpenseSummaryPDF(summary, filter, h.now())
	if err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to render expense report")
		return
	}
	c.Header("Content-Disposition", `inline; filename="expense-summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// getExpenseSummaryChart godoc
// @Summary Monthly spend chart
// @Description Bar chart of the month breakdown of the expense summary
// @Tags travel-expenses
// @Produce png
// @Param period query string false "week, month, quarter, year or all" default(all)
// @Param type query string false "Expense type"
// @Param minAmount query string false "Minimum amount"
// @Param maxAmount query string false "Maximum amount"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /travel-expenses/summary/chart.png [get]
func (h *travelExpenseHandler) getExpenseSummaryChart(c *gin.Context) {
	summary, _, ok := h.loadSummary(c)
	if !ok {
		return
	}

	png, err := reports.MonthlySpendChart(summary)
	if err != nil {
		respondError(c, err, msgExpenseNotFound, "Failed to render expense chart")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// loadSummary binds the summary filter and runs it. It writes the error
// response itself and reports ok=false when the caller should stop.
func (h *travelExpenseHandler) loadSummary(c *gin.Context) (*domain.ExpenseSummary, domain.ExpenseSummaryFilter, bool) {
	var params dto.ExpenseSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return nil, domain.ExpenseSummaryFilter{}, false
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, msgExpenseNotFound, msgSummaryFailed)
		return nil, domain.ExpenseSummaryFilter{}, false
	}

	summary, err := h.dashboardService.ExpenseSummary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, msgExpenseNotFound, msgSummaryFailed)
		return nil, domain.ExpenseSummaryFilter{}, false
	}
	return summary, filter, true
}
