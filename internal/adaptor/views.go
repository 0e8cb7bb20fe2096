package adaptor

import (
	"io"

	"travel-booking/internal/router"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Navigator lets a view request a route change or surface a notification.
// The session shell implements it.
type Navigator interface {
	Navigate(route router.Route)
	ShowModal(message string)
}

type Views struct {
	Home        *HomeView
	Tours       *ToursView
	TourDetails *TourDetailsView
	Book        *BookView
	Payment     *PaymentView
	Bookings    *BookingsView
	NotFound    *NotFoundView
}

func NewViews(service *usecase.Service, rt *router.Router, nav Navigator, config *utils.Config, out io.Writer, log *zap.Logger) *Views {
	return &Views{
		Home:        NewHomeView(service.Tour, rt, out, log),
		Tours:       NewToursView(service.Tour, rt, out, log),
		TourDetails: NewTourDetailsView(service.Tour, rt, out, log),
		Book:        NewBookView(service, rt, nav, out, log),
		Payment:     NewPaymentView(service.Booking, rt, nav, out, log),
		Bookings:    NewBookingsView(service.Booking, rt, config.Booking.RecentCount, out, log),
		NotFound:    NewNotFoundView(out, log),
	}
}
