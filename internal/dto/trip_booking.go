package dto

import "github.com/SscSPs/workplace_services/internal/core/domain"

// CreateTripBookingRequest defines the data needed to request a trip booking.
type CreateTripBookingRequest struct {
	TripType      string `json:"tripType" validate:"required,max=50"`
	FromLocation  string `json:"fromLocation" validate:"required,max=200"`
	ToLocation    string `json:"toLocation" validate:"required,max=200"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	Purpose       string `json:"purpose" validate:"required,max=500"`
	PreferredTime string `json:"preferredTime" validate:"max=50"`
	Accommodation string `json:"accommodation" validate:"max=200"`
}

// UpdateTripBookingRequest defines a partial update; omitted fields are left unchanged.
type UpdateTripBookingRequest struct {
	TripType      *string `json:"tripType" validate:"omitnil,min=1,max=50"`
	FromLocation  *string `json:"fromLocation" validate:"omitnil,min=1,max=200"`
	ToLocation    *string `json:"toLocation" validate:"omitnil,min=1,max=200"`
	DepartureDate *string `json:"departureDate" validate:"omitnil,datetime=2006-01-02"`
	ReturnDate    *string `json:"returnDate" validate:"omitnil,datetime=2006-01-02"`
	Purpose       *string `json:"purpose" validate:"omitnil,min=1,max=500"`
	PreferredTime *string `json:"preferredTime" validate:"omitnil,max=50"`
	Accommodation *string `json:"accommodation" validate:"omitnil,max=200"`
	Status        *string `json:"status" validate:"omitnil,oneof=pending confirmed rejected"`
}

// TripBookingResponse defines the data returned for a trip booking.
type TripBookingResponse struct {
	ID            string  `json:"id"`
	TripType      string  `json:"tripType"`
	FromLocation  string  `json:"fromLocation"`
	ToLocation    string  `json:"toLocation"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    *string `json:"returnDate"`
	Purpose       string  `json:"purpose"`
	PreferredTime string  `json:"preferredTime"`
	Accommodation string  `json:"accommodation"`
	Status        string  `json:"status"`
	AuditResponse
}

// TripCalendarDayResponse lists the bookings departing on one day.
type TripCalendarDayResponse struct {
	Date     string                `json:"date"`
	Bookings []TripBookingResponse `json:"bookings"`
}

// ToTripBookingResponse converts a domain.TripBooking to TripBookingResponse DTO.
func ToTripBookingResponse(b *domain.TripBooking) TripBookingResponse {
	res := TripBookingResponse{
		ID:            b.ID,
		TripType:      b.TripType,
		FromLocation:  b.FromLocation,
		ToLocation:    b.ToLocation,
		DepartureDate: formatDate(b.DepartureDate),
		Purpose:       b.Purpose,
		PreferredTime: b.PreferredTime,
		Accommodation: b.Accommodation,
		Status:        string(b.Status),
		AuditResponse: toAuditResponse(b.AuditFields),
	}
	if b.ReturnDate != nil {
		res.ReturnDate = optionalString(formatDate(*b.ReturnDate))
	}
	return res
}

// ToTripBookingResponses converts a slice of domain.TripBooking to []TripBookingResponse.
func ToTripBookingResponses(bs []domain.TripBooking) []TripBookingResponse {
	res := make([]TripBookingResponse, len(bs))
	for i := range bs {
		res[i] = ToTripBookingResponse(&bs[i])
	}
	return res
}

// ToTripCalendarResponse converts calendar days to their response DTOs.
func ToTripCalendarResponse(days []domain.TripCalendarDay) []TripCalendarDayResponse {
	res := make([]TripCalendarDayResponse, len(days))
	for i, d := range days {
		res[i] = TripCalendarDayResponse{
			Date:     formatDate(d.Date),
			Bookings: ToTripBookingResponses(d.Bookings),
		}
	}
	return res
}
