package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

type TourDetailsView struct {
	service usecase.TourService
	router  *router.Router
	out     io.Writer
	log     *zap.Logger
}

func NewTourDetailsView(service usecase.TourService, rt *router.Router, out io.Writer, log *zap.Logger) *TourDetailsView {
	return &TourDetailsView{
		service: service,
		router:  rt,
		out:     out,
		log:     log.With(zap.String("view", "tour_details")),
	}
}

func (v *TourDetailsView) Activate(ctx context.Context, route router.TourDetailsRoute, tok router.Token) {
	fmt.Fprintf(v.out, "Loading details for Tour #%d...\n", route.TourID)

	tour, err := v.service.GetTour(ctx, route.TourID)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale tour details discarded", zap.Int("tour_id", route.TourID))
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Tour package not found or an error occurred.")
		return
	}

	fmt.Fprintf(v.out, "%s\n", tour.Name)
	fmt.Fprintf(v.out, "Destination: %s\n", tour.Destination)
	fmt.Fprintf(v.out, "Duration: %d days\n", tour.Duration)
	fmt.Fprintf(v.out, "Price: $%.2f per person\n", tour.Price)
	fmt.Fprintf(v.out, "Available Dates: %s\n", tour.AvailableDates)
	fmt.Fprintf(v.out, "Activity Level: %s\n", tour.ActivityLevel)
	fmt.Fprintf(v.out, "Inclusions: %s\n", tour.Inclusions)
	fmt.Fprintf(v.out, "Description: %s\n", tour.Description)

	if len(tour.Itinerary) > 0 {
		fmt.Fprintln(v.out, "Detailed Itinerary:")
		for _, item := range tour.Itinerary {
			fmt.Fprintf(v.out, "  %s: %s\n", item.Day, item.Details)
		}
	}

	fmt.Fprintf(v.out, "Book this tour with 'book %d'.\n", tour.ID)
}
