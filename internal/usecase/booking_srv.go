package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/jinzhu/now"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, id int) (*response.BookingResponse, error)
	MarkPaid(ctx context.Context, bookingID int) (*response.BookingResponse, error)
	ListRecent(ctx context.Context, n int) ([]response.BookingResponse, error)
	Count(ctx context.Context) (int, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	ids    *utils.IDSequence
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		ids:    utils.NewIDSequence(config.Booking.IDStart),
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// Parse numeric form fields. The original mock let a bad number run
	// through the cost calculation; here it is rejected up front.
	tourID, err := strconv.Atoi(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("%w: tour id %q is not a number", ErrInvalidInput, req.TourID)
	}

	guests, err := strconv.Atoi(req.NumberOfGuests)
	if err != nil || guests < 1 {
		return nil, fmt.Errorf("%w: number of guests %q must be a positive number", ErrInvalidInput, req.NumberOfGuests)
	}

	bookingDate, err := now.Parse(req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: booking date %q is not a date", ErrInvalidInput, req.BookingDate)
	}

	// Look up the tour; an unknown id falls back to the default package
	// instead of failing, matching the catalog contract.
	tourName := s.config.Booking.FallbackTourName
	tourPrice := s.config.Booking.FallbackTourPrice

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		s.log.Warn("Tour lookup failed, using fallback package",
			zap.Int("tour_id", tourID),
			zap.Error(err),
		)
	} else {
		tourName = tour.Name
		tourPrice = tour.Price
	}

	booking := &entity.Booking{
		ID:             s.ids.Next(),
		Reference:      utils.GenerateBookingReference(),
		TourID:         tourID,
		TourName:       tourName,
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		NumberOfGuests: guests,
		BookingDate:    bookingDate,
		TotalCost:      tourPrice * float64(guests),
		PaymentStatus:  entity.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Booking.Save(ctx, booking); err != nil {
		s.log.Error("Failed to save booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Int("tour_id", tourID),
		zap.Int("guests", guests),
		zap.Float64("total_cost", booking.TotalCost),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}

	return response.BookingToResponse(booking), nil
}

// MarkPaid flips a pending booking to PAID. Paying a booking that is already
// PAID is a no-op that re-confirms the status.
func (s *bookingService) MarkPaid(ctx context.Context, bookingID int) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, repository.ErrBookingNotFound) {
			s.log.Error("Failed to load booking for payment", zap.Error(err), zap.Int("booking_id", bookingID))
		}
		return nil, fmt.Errorf("mark booking %d paid: %w", bookingID, err)
	}

	if booking.PaymentStatus == entity.PaymentStatusPaid {
		s.log.Info("Booking already paid", zap.Int("booking_id", bookingID))
		return response.BookingToResponse(booking), nil
	}

	paidAt := time.Now()
	booking.PaymentStatus = entity.PaymentStatusPaid
	booking.PaidAt = &paidAt

	if err := s.repo.Booking.Save(ctx, booking); err != nil {
		s.log.Error("Failed to update payment status", zap.Error(err), zap.Int("booking_id", bookingID))
		return nil, fmt.Errorf("mark booking %d paid: %w", bookingID, err)
	}

	s.log.Info("Payment processed",
		zap.Int("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.Float64("amount", booking.TotalCost),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ListRecent(ctx context.Context, n int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindRecent(ctx, n)
	if err != nil {
		s.log.Error("Failed to list recent bookings", zap.Error(err))
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *response.BookingToResponse(booking)
	}

	return responses, nil
}

func (s *bookingService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}
