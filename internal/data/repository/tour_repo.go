package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"

	"go.uber.org/zap"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	FindFeatured(ctx context.Context, n int) ([]*entity.Tour, error)
	FindByID(ctx context.Context, id int) (*entity.Tour, error)
}

type tourRepository struct {
	// canonical tours first, featured cards after, in definition order
	tours    []entity.Tour
	featured int // number of featured entries at the tail of tours
	log      *zap.Logger
}

func NewTourRepository(canonical, featured []entity.Tour, log *zap.Logger) TourRepository {
	tours := make([]entity.Tour, 0, len(canonical)+len(featured))
	tours = append(tours, canonical...)
	tours = append(tours, featured...)

	return &tourRepository{
		tours:    tours,
		featured: len(featured),
		log:      log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	all := make([]*entity.Tour, len(r.tours))
	for i := range r.tours {
		all[i] = &r.tours[i]
	}
	return all, nil
}

func (r *tourRepository) FindFeatured(ctx context.Context, n int) ([]*entity.Tour, error) {
	start := len(r.tours) - r.featured
	if n > r.featured {
		n = r.featured
	}

	featured := make([]*entity.Tour, n)
	for i := 0; i < n; i++ {
		featured[i] = &r.tours[start+i]
	}
	return featured, nil
}

func (r *tourRepository) FindByID(ctx context.Context, id int) (*entity.Tour, error) {
	for i := range r.tours {
		if r.tours[i].ID == id {
			return &r.tours[i], nil
		}
	}

	return nil, fmt.Errorf("find tour by ID %d: %w", id, ErrTourNotFound)
}
