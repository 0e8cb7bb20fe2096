package repository

import (
	"travel-booking/internal/data/seed"

	"go.uber.org/zap"
)

type Repository struct {
	Tour    TourRepository
	Booking BookingRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Tour:    NewTourRepository(seed.CanonicalTours(), seed.FeaturedTours(), log),
		Booking: NewBookingRepository(log),
	}
}
