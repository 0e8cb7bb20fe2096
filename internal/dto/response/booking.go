package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID             int                  `json:"id"`
	Reference      string               `json:"reference"`
	TourID         int                  `json:"tour_id"`
	TourName       string               `json:"tour_name"`
	CustomerName   string               `json:"customer_name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	NumberOfGuests int                  `json:"number_of_guests"`
	BookingDate    string               `json:"booking_date"`
	TotalCost      float64              `json:"total_cost"`
	PaymentStatus  entity.PaymentStatus `json:"payment_status"`
	CreatedAt      time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             booking.ID,
		Reference:      booking.Reference,
		TourID:         booking.TourID,
		TourName:       booking.TourName,
		CustomerName:   booking.CustomerName,
		Email:          booking.Email,
		Phone:          booking.Phone,
		NumberOfGuests: booking.NumberOfGuests,
		BookingDate:    booking.BookingDate.Format("2006-01-02"),
		TotalCost:      booking.TotalCost,
		PaymentStatus:  booking.PaymentStatus,
		CreatedAt:      booking.CreatedAt,
	}
}
