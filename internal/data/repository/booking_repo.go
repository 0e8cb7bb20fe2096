package repository

import (
	"context"
	"fmt"
	"sync"

	"travel-booking/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Save(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int) (*entity.Booking, error)
	FindRecent(ctx context.Context, n int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int, error)
}

type bookingRepository struct {
	mu    sync.RWMutex
	byID  map[int]*entity.Booking
	order []int // insertion order of ids
	log   *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		byID: make(map[int]*entity.Booking),
		log:  log.With(zap.String("repository", "booking")),
	}
}

// Save stores the booking by id, overwriting any prior value. A rewrite keeps
// the original insertion position.
func (r *bookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	if booking == nil {
		return fmt.Errorf("save booking: nil booking")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *booking
	if _, exists := r.byID[cp.ID]; !exists {
		r.order = append(r.order, cp.ID)
	}
	r.byID[cp.ID] = &cp

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("find booking by ID %d: %w", id, ErrBookingNotFound)
	}

	// return a copy so callers cannot mutate stored state
	cp := *booking
	return &cp, nil
}

func (r *bookingRepository) FindRecent(ctx context.Context, n int) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > len(r.order) {
		n = len(r.order)
	}
	if n < 0 {
		n = 0
	}

	recent := make([]*entity.Booking, 0, n)
	for _, id := range r.order[len(r.order)-n:] {
		cp := *r.byID[id]
		recent = append(recent, &cp)
	}
	return recent, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}
