package mapping

import (
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/models"
)

// ToModelTripBooking converts a domain TripBooking to a model TripBooking
func ToModelTripBooking(d domain.TripBooking) models.TripBooking {
	return models.TripBooking{
		ID:            d.ID,
		TripType:      d.TripType,
		FromLocation:  d.FromLocation,
		ToLocation:    d.ToLocation,
		DepartureDate: d.DepartureDate,
		ReturnDate:    ToNullTime(d.ReturnDate),
		Purpose:       d.Purpose,
		PreferredTime: d.PreferredTime,
		Accommodation: d.Accommodation,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTripBooking converts a model TripBooking to a domain TripBooking
func ToDomainTripBooking(m models.TripBooking) domain.TripBooking {
	return domain.TripBooking{
		ID:            m.ID,
		TripType:      m.TripType,
		FromLocation:  m.FromLocation,
		ToLocation:    m.ToLocation,
		DepartureDate: m.DepartureDate,
		ReturnDate:    FromNullTime(m.ReturnDate),
		Purpose:       m.Purpose,
		PreferredTime: m.PreferredTime,
		Accommodation: m.Accommodation,
		Status:        domain.BookingStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTripBookingSlice converts a slice of model TripBookings to domain TripBookings
func ToDomainTripBookingSlice(ms []models.TripBooking) []domain.TripBooking {
	ds := make([]domain.TripBooking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTripBooking(m)
	}
	return ds
}
