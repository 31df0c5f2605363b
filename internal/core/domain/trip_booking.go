package domain

import "time"

// BookingStatus is the confirmation state of a trip booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
)

// Columns of trip_bookings.
const (
	ColumnTripType      = "trip_type"
	ColumnFromLocation  = "from_location"
	ColumnToLocation    = "to_location"
	ColumnDepartureDate = "departure_date"
	ColumnReturnDate    = "return_date"
	ColumnPurpose       = "purpose"
	ColumnPreferredTime = "preferred_time"
	ColumnAccommodation = "accommodation"
)

// TripBooking is a request to book travel.
type TripBooking struct {
	ID            string        `json:"id"`
	TripType      string        `json:"tripType"` // e.g. one-way, round-trip
	FromLocation  string        `json:"fromLocation"`
	ToLocation    string        `json:"toLocation"`
	DepartureDate time.Time     `json:"departureDate"`
	ReturnDate    *time.Time    `json:"returnDate"` // Nullable for one-way trips
	Purpose       string        `json:"purpose"`
	PreferredTime string        `json:"preferredTime"`
	Accommodation string        `json:"accommodation"`
	Status        BookingStatus `json:"status"`
	AuditFields
}

// TripBookingPatch carries the fields of a partial update; nil means unchanged.
type TripBookingPatch struct {
	TripType      *string
	FromLocation  *string
	ToLocation    *string
	DepartureDate *time.Time
	ReturnDate    *time.Time
	Purpose       *string
	PreferredTime *string
	Accommodation *string
	Status        *BookingStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p TripBookingPatch) IsEmpty() bool {
	return p.TripType == nil && p.FromLocation == nil && p.ToLocation == nil && p.DepartureDate == nil &&
		p.ReturnDate == nil && p.Purpose == nil && p.PreferredTime == nil && p.Accommodation == nil && p.Status == nil
}

// TripCalendarDay groups the bookings departing on one day.
type TripCalendarDay struct {
	Date     time.Time
	Bookings []TripBooking
}
