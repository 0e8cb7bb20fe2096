package request

// CreateBookingRequest carries the raw booking form. Numeric fields stay
// strings here; the service parses them and rejects anything unparseable.
type CreateBookingRequest struct {
	TourID         string `json:"tour_id" validate:"required,numeric"`
	CustomerName   string `json:"customer_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	NumberOfGuests string `json:"number_of_guests" validate:"required,numeric"`
	BookingDate    string `json:"booking_date" validate:"required"`
}
