package models

import (
	"database/sql"
	"time"
)

// TripBooking is a row of trip_bookings.
type TripBooking struct {
	ID            string       `db:"id"`
	TripType      string       `db:"trip_type"`
	FromLocation  string       `db:"from_location"`
	ToLocation    string       `db:"to_location"`
	DepartureDate time.Time    `db:"departure_date"`
	ReturnDate    sql.NullTime `db:"return_date"`
	Purpose       string       `db:"purpose"`
	PreferredTime string       `db:"preferred_time"`
	Accommodation string       `db:"accommodation"`
	Status        string       `db:"status"`
	AuditFields
}
