package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

// PaymentView is the mock payment gateway page.
type PaymentView struct {
	service usecase.BookingService
	router  *router.Router
	nav     Navigator
	out     io.Writer
	log     *zap.Logger
}

func NewPaymentView(service usecase.BookingService, rt *router.Router, nav Navigator, out io.Writer, log *zap.Logger) *PaymentView {
	return &PaymentView{
		service: service,
		router:  rt,
		nav:     nav,
		out:     out,
		log:     log.With(zap.String("view", "payment")),
	}
}

func (v *PaymentView) Activate(ctx context.Context, route router.PaymentRoute, tok router.Token) {
	fmt.Fprintln(v.out, "Fetching payment details...")

	booking, err := v.service.GetBooking(ctx, route.BookingID)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale booking details discarded", zap.Int("booking_id", route.BookingID))
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Could not load booking details. Check the Booking ID.")
		return
	}

	fmt.Fprintln(v.out, "Payment Gateway (Mock)")
	fmt.Fprintf(v.out, "Please confirm payment for your %s booking.\n", booking.TourName)
	fmt.Fprintf(v.out, "Booking ID: %d (%s)\n", booking.ID, booking.Reference)
	fmt.Fprintf(v.out, "Amount Due: $%.2f\n", booking.TotalCost)
	fmt.Fprintf(v.out, "Current Status: %s\n", booking.PaymentStatus)

	if booking.PaymentStatus == entity.PaymentStatusPaid {
		fmt.Fprintln(v.out, "Payment already processed and booking is confirmed!")
		return
	}

	fmt.Fprintln(v.out, "Confirm with 'pay'.")
}

// Pay runs the mock payment for the active activation.
func (v *PaymentView) Pay(ctx context.Context, route router.PaymentRoute, tok router.Token) {
	fmt.Fprintln(v.out, "Processing Mock Payment...")

	booking, err := v.service.MarkPaid(ctx, route.BookingID)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale payment result discarded", zap.Int("booking_id", route.BookingID))
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Mock payment failed. The backend status update failed.")
		return
	}

	fmt.Fprintf(v.out, "Current Status: %s\n", booking.PaymentStatus)

	v.nav.ShowModal("Payment Successful! Your adventure is confirmed.")
	v.nav.Navigate(router.HomeRoute{})
}
