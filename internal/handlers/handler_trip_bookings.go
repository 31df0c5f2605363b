package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgBookingNotFound = "Trip booking not found"

// tripBookingHandler handles HTTP requests related to trip bookings.
type tripBookingHandler struct {
	tripBookingService portssvc.TripBookingSvcFacade
}

func newTripBookingHandler(svc portssvc.TripBookingSvcFacade) *tripBookingHandler {
	return &tripBookingHandler{tripBookingService: svc}
}

// registerTripBookingRoutes registers routes related to trip bookings.
func registerTripBookingRoutes(rg *gin.RouterGroup, svc portssvc.TripBookingSvcFacade, limit gin.HandlerFunc) {
	h := newTripBookingHandler(svc)

	bookings := rg.Group("/trip-bookings")
	{
		bookings.GET("", h.listTripBookings)
		bookings.POST("", limit, h.createTripBooking)
		bookings.GET("/upcoming", h.listUpcomingTripBookings)
		bookings.GET("/calendar", h.getTripCalendar)
		bookings.GET("/:id", h.getTripBooking)
		bookings.PATCH("/:id", limit, h.updateTripBooking)
		bookings.DELETE("/:id", limit, h.deleteTripBooking)
	}
}

// listTripBookings godoc
// @Summary List trip bookings
// @Tags trip-bookings
// @Produce json
// @Success 200 {array} dto.TripBookingResponse
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /trip-bookings [get]
func (h *tripBookingHandler) listTripBookings(c *gin.Context) {
	bookings, err := h.tripBookingService.ListTripBookings(c.Request.Context())
	if err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to list trip bookings")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripBookingResponses(bookings))
}

// listUpcomingTripBookings godoc
// @Summary List upcoming trips
// @Description Bookings departing today or later, soonest first
// @Tags trip-bookings
// @Produce json
// @Success 200 {array} dto.TripBookingResponse
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /trip-bookings/upcoming [get]
func (h *tripBookingHandler) listUpcomingTripBookings(c *gin.Context) {
	bookings, err := h.tripBookingService.ListUpcomingTripBookings(c.Request.Context())
	if err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to list upcoming trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripBookingResponses(bookings))
}

// getTripCalendar godoc
// @Summary Upcoming trips calendar
// @Description Upcoming bookings of a month grouped by departure day
// @Tags trip-bookings
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {array} dto.TripCalendarDayResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /trip-bookings/calendar [get]
func (h *tripBookingHandler) getTripCalendar(c *gin.Context) {
	days, err := h.tripBookingService.TripBookingCalendar(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to build trip calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripCalendarResponse(days))
}

// getTripBooking godoc
// @Summary Get a trip booking
// @Tags trip-bookings
// @Produce json
// @Param id path string true "Trip booking ID"
// @Success 200 {object} dto.TripBookingResponse
// @Failure 404 {object} dto.ErrorResponse "Trip booking not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Router /trip-bookings/{id} [get]
func (h *tripBookingHandler) getTripBooking(c *gin.Context) {
	booking, err := h.tripBookingService.GetTripBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to retrieve trip booking")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripBookingResponse(booking))
}

// createTripBooking godoc
// @Summary Request a trip booking
// @Tags trip-bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateTripBookingRequest true "Booking details"
// @Success 201 {object} dto.TripBookingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /trip-bookings [post]
func (h *tripBookingHandler) createTripBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTripBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.tripBookingService.CreateTripBooking(c.Request.Context(), req, callerID(c))
	if err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to create trip booking")
		return
	}

	logger.Info("Trip booking created", slog.String("trip_booking_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToTripBookingResponse(created))
}

// updateTripBooking godoc
// @Summary Update a trip booking
// @Tags trip-bookings
// @Accept json
// @Param id path string true "Trip booking ID"
// @Param booking body dto.UpdateTripBookingRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Trip booking not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /trip-bookings/{id} [patch]
func (h *tripBookingHandler) updateTripBooking(c *gin.Context) {
	var req dto.UpdateTripBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.tripBookingService.UpdateTripBooking(c.Request.Context(), c.Param("id"), req, callerID(c)); err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to update trip booking")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteTripBooking godoc
// @Summary Cancel a trip booking
// @Tags trip-bookings
// @Param id path string true "Trip booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Trip booking not found"
// @Failure 502 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /trip-bookings/{id} [delete]
func (h *tripBookingHandler) deleteTripBooking(c *gin.Context) {
	if err := h.tripBookingService.DeleteTripBooking(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		respondError(c, err, msgBookingNotFound, "Failed to cancel trip booking")
		return
	}
	c.Status(http.StatusNoContent)
}
