package usecase

import (
	"context"
	"fmt"

	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"

	"go.uber.org/zap"
)

type TourService interface {
	ListTours(ctx context.Context) ([]response.TourSummary, error)
	ListFeatured(ctx context.Context, n int) ([]response.TourSummary, error)
	GetTour(ctx context.Context, id int) (*response.TourDetail, error)
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) ListTours(ctx context.Context) ([]response.TourSummary, error) {
	tours, err := s.repo.Tour.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	summaries := make([]response.TourSummary, len(tours))
	for i, tour := range tours {
		summaries[i] = response.TourToSummary(tour)
	}

	return summaries, nil
}

func (s *tourService) ListFeatured(ctx context.Context, n int) ([]response.TourSummary, error) {
	tours, err := s.repo.Tour.FindFeatured(ctx, n)
	if err != nil {
		s.log.Error("Failed to list featured tours", zap.Error(err))
		return nil, fmt.Errorf("list featured tours: %w", err)
	}

	summaries := make([]response.TourSummary, len(tours))
	for i, tour := range tours {
		summaries[i] = response.TourToSummary(tour)
	}

	return summaries, nil
}

func (s *tourService) GetTour(ctx context.Context, id int) (*response.TourDetail, error) {
	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour %d: %w", id, err)
	}

	return response.TourToDetail(tour), nil
}
