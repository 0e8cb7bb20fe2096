package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// Booking is a user-submitted reservation. TourName and TotalCost are
// snapshots taken at creation time; changing the tour afterwards must not
// change an existing booking.
type Booking struct {
	ID             int
	Reference      string
	TourID         int
	TourName       string
	CustomerName   string
	Email          string
	Phone          string
	NumberOfGuests int
	BookingDate    time.Time
	TotalCost      float64
	PaymentStatus  PaymentStatus
	CreatedAt      time.Time
	PaidAt         *time.Time
}
