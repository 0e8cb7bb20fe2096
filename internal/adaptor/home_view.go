package adaptor

import (
	"context"
	"fmt"
	"io"

	"travel-booking/internal/router"
	"travel-booking/internal/usecase"

	"go.uber.org/zap"
)

const featuredCount = 3

type HomeView struct {
	service usecase.TourService
	router  *router.Router
	out     io.Writer
	log     *zap.Logger
}

func NewHomeView(service usecase.TourService, rt *router.Router, out io.Writer, log *zap.Logger) *HomeView {
	return &HomeView{
		service: service,
		router:  rt,
		out:     out,
		log:     log.With(zap.String("view", "home")),
	}
}

func (v *HomeView) Activate(ctx context.Context, tok router.Token) {
	fmt.Fprintln(v.out, "Check out these EPIC Destinations!")
	fmt.Fprintln(v.out, "Adventure, luxury, and mystery. Your next journey starts here.")
	fmt.Fprintln(v.out)

	featured, err := v.service.ListFeatured(ctx, featuredCount)
	if !v.router.IsCurrent(tok) {
		v.log.Debug("Stale featured result discarded")
		return
	}
	if err != nil {
		fmt.Fprintln(v.out, "Failed to load featured adventures.")
		return
	}

	fmt.Fprintln(v.out, "Featured Adventures:")
	for _, tour := range featured {
		fmt.Fprintf(v.out, "  #%d [%s] %s ($%.2f, %d days)\n",
			tour.ID, tour.Destination, tour.Name, tour.Price, tour.Duration)
	}

	all, err := v.service.ListTours(ctx)
	if !v.router.IsCurrent(tok) {
		return
	}
	if err == nil {
		fmt.Fprintf(v.out, "View all %d packages with 'tours'.\n", len(all))
	}
}
