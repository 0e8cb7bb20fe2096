package response

import "travel-booking/internal/data/entity"

type TourSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

type TourDetail struct {
	TourSummary
	Description    string                 `json:"description"`
	AvailableDates string                 `json:"available_dates"`
	ActivityLevel  string                 `json:"activity_level"`
	Inclusions     string                 `json:"inclusions"`
	Itinerary      []entity.ItineraryItem `json:"itinerary"`
}

func TourToSummary(tour *entity.Tour) TourSummary {
	return TourSummary{
		ID:          tour.ID,
		Name:        tour.Name,
		Destination: tour.Destination,
		Price:       tour.Price,
		Duration:    tour.Duration,
	}
}

func TourToDetail(tour *entity.Tour) *TourDetail {
	return &TourDetail{
		TourSummary:    TourToSummary(tour),
		Description:    tour.Description,
		AvailableDates: tour.AvailableDates,
		ActivityLevel:  tour.ActivityLevel,
		Inclusions:     tour.Inclusions,
		Itinerary:      tour.Itinerary,
	}
}
