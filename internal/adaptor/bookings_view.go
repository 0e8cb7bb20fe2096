package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

// BookingsView lists the bookings made during this session.
type BookingsView struct {
	service     usecase.BookingService
	router      *router.Router
	recentCount int
	out         io.Writer
	log         *zap.Logger
}

func NewBookingsView(service usecase.BookingService, rt *router.Router, recentCount int, out io.Writer, log *zap.Logger) *BookingsView {
	return &BookingsView{
		service:     service,
		router:      rt,
		recentCount: recentCount,
		out:         out,
		log:         log.With(zap.String("view", "bookings")),
	}
}

func (v *BookingsView) Activate(ctx context.Context, tok router.Token) {
	count, err := v.service.Count(ctx)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale booking count discarded")
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Failed to load your bookings.")
		return
	}

	fmt.Fprintln(v.out, "My Bookings")

	plural := "s"
	if count == 1 {
		plural = ""
	}
	fmt.Fprintf(v.out, "You have %d mock booking%s in the system.\n", count, plural)

	if count == 0 {
		return
	}

	recent, err := v.service.ListRecent(ctx, v.recentCount)
	if !v.router.IsCurrent(tok) {
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Failed to load recent bookings.")
		return
	}

	fmt.Fprintln(v.out, "Recent Bookings:")
	for _, booking := range recent {
		fmt.Fprintf(v.out, "  %s (ID: %d) - %s\n", booking.TourName, booking.ID, booking.PaymentStatus)
	}
	fmt.Fprintln(v.out, "Note: Since this is a mock system, these bookings are temporary for the current session.")
}
