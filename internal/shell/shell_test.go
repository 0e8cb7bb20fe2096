package shell_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/router"
	"travel-booking/internal/wire"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func newTestApp() (*wire.App, *bytes.Buffer) {
	config := &utils.Config{
		App: utils.AppConfig{Name: "travel-booking"},
		Booking: utils.BookingConfig{
			FallbackTourName:  "Unknown Tour",
			FallbackTourPrice: 500,
			RecentCount:       3,
			IDStart:           1000,
		},
	}

	var out bytes.Buffer
	repos := repository.NewRepository(zap.NewNop())
	app := wire.Wiring(repos, config, zap.NewNop(), &out)
	return app, &out
}

func bookingForm() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:   "Jordan Miles",
		Email:          "jordan@example.com",
		Phone:          "555-0101",
		NumberOfGuests: "2",
		BookingDate:    "2026-05-01",
	}
}

func TestOpenUnknownViewLandsOnNotFound(t *testing.T) {
	app, out := newTestApp()

	app.Shell.Open("admin", nil)

	if !strings.Contains(out.String(), "404 Page Not Found") {
		t.Errorf("expected 404 rendering, got %q", out.String())
	}
	if _, ok := app.Shell.CurrentRoute().(router.NotFoundRoute); !ok {
		t.Errorf("expected NotFoundRoute, got %#v", app.Shell.CurrentRoute())
	}
}

func TestFullBookingFlow(t *testing.T) {
	app, out := newTestApp()
	ctx := context.Background()

	app.Shell.Open("book", map[string]string{"tourId": "1"})
	if !strings.Contains(out.String(), "Book Your Trip: European Discovery Tour") {
		t.Fatalf("booking form did not open: %q", out.String())
	}

	out.Reset()
	app.Shell.SubmitBooking(ctx, bookingForm())

	if !strings.Contains(out.String(), "Booking created successfully! Proceeding to payment for Tour: European Discovery Tour.") {
		t.Fatalf("expected booking confirmation, got %q", out.String())
	}

	paymentRoute, ok := app.Shell.CurrentRoute().(router.PaymentRoute)
	if !ok {
		t.Fatalf("expected PaymentRoute after submission, got %#v", app.Shell.CurrentRoute())
	}
	if paymentRoute.BookingID < 1000 {
		t.Errorf("unexpected booking id %d", paymentRoute.BookingID)
	}
	if !strings.Contains(out.String(), "Amount Due: $3700.00") {
		t.Errorf("payment page did not show the frozen cost: %q", out.String())
	}

	out.Reset()
	app.Shell.ConfirmPayment(ctx)

	if !strings.Contains(out.String(), "Payment Successful! Your adventure is confirmed.") {
		t.Fatalf("expected payment confirmation, got %q", out.String())
	}
	if _, ok := app.Shell.CurrentRoute().(router.HomeRoute); !ok {
		t.Errorf("expected HomeRoute after payment, got %#v", app.Shell.CurrentRoute())
	}

	// revisiting the payment page shows the settled state
	out.Reset()
	app.Shell.Open("payment", map[string]string{"bookingId": strconv.Itoa(paymentRoute.BookingID)})
	if !strings.Contains(out.String(), "Payment already processed and booking is confirmed!") {
		t.Errorf("expected settled payment page, got %q", out.String())
	}
}

func TestSubmitBookingRequiresBookView(t *testing.T) {
	app, out := newTestApp()

	app.Shell.Open("home", nil)
	out.Reset()

	app.Shell.SubmitBooking(context.Background(), bookingForm())
	if !strings.Contains(out.String(), "No booking form is open.") {
		t.Errorf("expected rejection outside the booking form, got %q", out.String())
	}
}

func TestConfirmPaymentRequiresPaymentView(t *testing.T) {
	app, out := newTestApp()

	app.Shell.Open("tours", nil)
	out.Reset()

	app.Shell.ConfirmPayment(context.Background())
	if !strings.Contains(out.String(), "No payment is in progress.") {
		t.Errorf("expected rejection outside the payment page, got %q", out.String())
	}
}

func TestInvalidSubmissionStaysOnForm(t *testing.T) {
	app, out := newTestApp()
	ctx := context.Background()

	app.Shell.Open("book", map[string]string{"tourId": "2"})
	out.Reset()

	form := bookingForm()
	form.Email = "not-an-email"
	app.Shell.SubmitBooking(ctx, form)

	if !strings.Contains(out.String(), "Failed to create booking. Please check your details") {
		t.Errorf("expected validation failure message, got %q", out.String())
	}
	if _, ok := app.Shell.CurrentRoute().(router.BookRoute); !ok {
		t.Errorf("expected to stay on BookRoute, got %#v", app.Shell.CurrentRoute())
	}
}

func TestSubscribe(t *testing.T) {
	app, out := newTestApp()

	app.Shell.Subscribe("jordan@example.com")
	if !strings.Contains(out.String(), "Thanks for subscribing, jordan@example.com!") {
		t.Errorf("expected subscription confirmation, got %q", out.String())
	}

	out.Reset()
	app.Shell.Subscribe("nope")
	if !strings.Contains(out.String(), "Please enter a valid email address to subscribe.") {
		t.Errorf("expected rejection for bad email, got %q", out.String())
	}
}

func TestPaymentPageForUnknownBooking(t *testing.T) {
	app, out := newTestApp()

	app.Shell.Open("payment", map[string]string{"bookingId": "424242"})
	if !strings.Contains(out.String(), "Could not load booking details. Check the Booking ID.") {
		t.Errorf("expected booking lookup failure message, got %q", out.String())
	}
}
