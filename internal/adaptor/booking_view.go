package adaptor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

// BookView shows the booking form for a tour and handles its submission.
type BookView struct {
	service *usecase.Service
	router  *router.Router
	nav     Navigator
	out     io.Writer
	log     *zap.Logger

	// name of the tour loaded by the last activation, used in the
	// confirmation message
	tourName string
}

func NewBookView(service *usecase.Service, rt *router.Router, nav Navigator, out io.Writer, log *zap.Logger) *BookView {
	return &BookView{
		service: service,
		router:  rt,
		nav:     nav,
		out:     out,
		log:     log.With(zap.String("view", "book")),
	}
}

func (v *BookView) Activate(ctx context.Context, route router.BookRoute, tok router.Token) {
	tour, err := v.service.Tour.GetTour(ctx, route.TourID)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale tour lookup discarded", zap.Int("tour_id", route.TourID))
		return
	}

	// the form still opens when the lookup fails, with a generic title
	v.tourName = "Selected Tour"
	if err == nil {
		v.tourName = tour.Name
	}

	fmt.Fprintf(v.out, "Book Your Trip: %s\n", v.tourName)
	fmt.Fprintln(v.out, "Fill the form with 'submit name=<full name> email=<email> phone=<phone> guests=<n> date=<yyyy-mm-dd>'.")
}

// Submit runs the booking form submission for the active activation.
func (v *BookView) Submit(ctx context.Context, req *request.CreateBookingRequest, tok router.Token) {
	fmt.Fprintln(v.out, "Processing Booking...")

	booking, err := v.service.Booking.CreateBooking(ctx, req)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale booking submission discarded")
		return
	}
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			fmt.Fprintf(v.out, "Failed to create booking. Please check your details: %v\n", err)
		} else {
			fmt.Fprintln(v.out, "Failed to create booking. Please check your details.")
		}
		return
	}

	v.nav.ShowModal(fmt.Sprintf("Booking created successfully! Proceeding to payment for Tour: %s.", v.tourName))
	v.nav.Navigate(router.PaymentRoute{BookingID: booking.ID})
}
