package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

type ToursView struct {
	service usecase.TourService
	router  *router.Router
	out     io.Writer
	log     *zap.Logger
}

func NewToursView(service usecase.TourService, rt *router.Router, out io.Writer, log *zap.Logger) *ToursView {
	return &ToursView{
		service: service,
		router:  rt,
		out:     out,
		log:     log.With(zap.String("view", "tours")),
	}
}

func (v *ToursView) Activate(ctx context.Context, tok router.Token) {
	fmt.Fprintln(v.out, "Fetching amazing tour packages...")

	tours, err := v.service.ListTours(ctx)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale tour list discarded")
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Failed to load tour packages.")
		return
	}

	fmt.Fprintln(v.out, "Available Tour Packages:")
	for _, tour := range tours {
		fmt.Fprintf(v.out, "  #%d %s | %s | $%.2f per person | %d days\n",
			tour.ID, tour.Name, tour.Destination, tour.Price, tour.Duration)
	}
	if len(tours) == 0 {
		fmt.Fprintln(v.out, "No tour packages currently available.")
	}
}
