package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func newTestService() *Service {
	config := &utils.Config{
		Booking: utils.BookingConfig{
			FallbackTourName:  "Unknown Tour",
			FallbackTourPrice: 500,
			RecentCount:       3,
			IDStart:           1000,
		},
	}
	repos := repository.NewRepository(zap.NewNop())
	return NewService(repos, config, zap.NewNop())
}

func validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		TourID:         "1",
		CustomerName:   "Jordan Miles",
		Email:          "jordan@example.com",
		Phone:          "555-0101",
		NumberOfGuests: "2",
		BookingDate:    "2026-05-01",
	}
}

func TestCreateBookingComputesFrozenCost(t *testing.T) {
	service := newTestService()

	booking, err := service.Booking.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if booking.TotalCost != 3700.00 {
		t.Errorf("expected total cost 3700.00, got %v", booking.TotalCost)
	}
	if booking.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("expected status PENDING, got %s", booking.PaymentStatus)
	}
	if booking.TourName != "European Discovery Tour" {
		t.Errorf("expected snapshotted tour name, got %q", booking.TourName)
	}
	if booking.ID < 1000 {
		t.Errorf("expected id from the sequence start, got %d", booking.ID)
	}
	if !strings.HasPrefix(booking.Reference, "TRVL-") {
		t.Errorf("expected TRVL reference, got %q", booking.Reference)
	}
}

func TestCreateBookingUnknownTourFallsBack(t *testing.T) {
	service := newTestService()

	req := validRequest()
	req.TourID = "999"
	req.NumberOfGuests = "3"

	booking, err := service.Booking.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if booking.TourName != "Unknown Tour" {
		t.Errorf("expected fallback tour name, got %q", booking.TourName)
	}
	if booking.TotalCost != 1500 {
		t.Errorf("expected fallback cost 500*3=1500, got %v", booking.TotalCost)
	}
}

func TestCreateBookingRejectsBadNumbers(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"non numeric guests", func(r *request.CreateBookingRequest) { r.NumberOfGuests = "two" }},
		{"zero guests", func(r *request.CreateBookingRequest) { r.NumberOfGuests = "0" }},
		{"negative guests", func(r *request.CreateBookingRequest) { r.NumberOfGuests = "-2" }},
		{"non numeric tour id", func(r *request.CreateBookingRequest) { r.TourID = "first" }},
		{"bad date", func(r *request.CreateBookingRequest) { r.BookingDate = "sometime soon" }},
		{"missing email", func(r *request.CreateBookingRequest) { r.Email = "" }},
		{"bad email", func(r *request.CreateBookingRequest) { r.Email = "not-an-email" }},
		{"missing name", func(r *request.CreateBookingRequest) { r.CustomerName = "" }},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(req)

		_, err := service.Booking.CreateBooking(ctx, req)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	// nothing was stored for the rejected submissions
	count, _ := service.Booking.Count(ctx)
	if count != 0 {
		t.Errorf("expected no stored bookings, got %d", count)
	}
}

func TestCreateBookingIDsAreDistinct(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	first, err := service.Booking.CreateBooking(ctx, validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	second, err := service.Booking.CreateBooking(ctx, validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("booking ids collided: %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestGetBookingRoundTrip(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Booking.CreateBooking(ctx, validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	got, err := service.Booking.GetBooking(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBooking returned error: %v", err)
	}

	if *got != *created {
		t.Errorf("round trip mismatch:\ncreated: %+v\ngot:     %+v", created, got)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	service := newTestService()

	_, err := service.Booking.GetBooking(context.Background(), 424242)
	if !errors.Is(err, repository.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestMarkPaidTransitionsOnce(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Booking.CreateBooking(ctx, validRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	paid, err := service.Booking.MarkPaid(ctx, created.ID)
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.PaymentStatus != entity.PaymentStatusPaid {
		t.Fatalf("expected status PAID, got %s", paid.PaymentStatus)
	}
	if paid.TotalCost != created.TotalCost {
		t.Errorf("payment changed the frozen cost: %v", paid.TotalCost)
	}

	// a second payment is a no-op, not an error
	again, err := service.Booking.MarkPaid(ctx, created.ID)
	if err != nil {
		t.Fatalf("second MarkPaid returned error: %v", err)
	}
	if again.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("expected status to stay PAID, got %s", again.PaymentStatus)
	}
}

func TestMarkPaidNotFound(t *testing.T) {
	service := newTestService()

	_, err := service.Booking.MarkPaid(context.Background(), 424242)
	if !errors.Is(err, repository.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestListRecentReflectsInsertionOrder(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	ids := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		booking, err := service.Booking.CreateBooking(ctx, validRequest())
		if err != nil {
			t.Fatalf("CreateBooking returned error: %v", err)
		}
		ids = append(ids, booking.ID)
	}

	recent, err := service.Booking.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent bookings, got %d", len(recent))
	}
	for i, want := range ids[1:] {
		if recent[i].ID != want {
			t.Errorf("recent[%d]: expected id %d, got %d", i, want, recent[i].ID)
		}
	}
}
