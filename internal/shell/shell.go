package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/router"

	"go.uber.org/zap"
)

type pendingNav struct {
	route router.Route
	token router.Token
}

// Shell owns the route state for one session and dispatches view
// activations. It runs as a single cooperative loop: a navigation requested
// while a view is activating is queued and applied after that activation
// returns, but its token supersedes the running activation immediately.
type Shell struct {
	router *router.Router
	views  *adaptor.Views
	out    io.Writer
	log    *zap.Logger

	queue       []pendingNav
	dispatching bool
}

func New(rt *router.Router, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{
		router: rt,
		out:    out,
		log:    log.With(zap.String("component", "shell")),
	}
}

// SetViews finishes wiring; the views need the shell as their Navigator.
func (s *Shell) SetViews(views *adaptor.Views) {
	s.views = views
}

func (s *Shell) CurrentRoute() router.Route {
	route, _ := s.router.Current()
	return route
}

// Navigate implements adaptor.Navigator.
func (s *Shell) Navigate(route router.Route) {
	token := s.router.Navigate(route)
	s.queue = append(s.queue, pendingNav{route: route, token: token})

	if s.dispatching {
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.activate(next.route, next.token)
	}
}

// Open resolves a raw view name and navigates to it. Any name is accepted;
// unknown ones land on the not found view.
func (s *Shell) Open(name string, params map[string]string) {
	s.Navigate(router.Resolve(name, params))
}

// ShowModal implements adaptor.Navigator.
func (s *Shell) ShowModal(message string) {
	fmt.Fprintf(s.out, "\n[notification] %s\n", message)
}

// Subscribe mirrors the newsletter form: a bare "@" check, nothing more.
func (s *Shell) Subscribe(email string) {
	if email != "" && strings.Contains(email, "@") {
		s.ShowModal(fmt.Sprintf("Thanks for subscribing, %s! You'll receive the best deals soon.", email))
		return
	}
	s.ShowModal("Please enter a valid email address to subscribe.")
}

// SubmitBooking forwards the booking form to the book view. It only applies
// when that view is active.
func (s *Shell) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) {
	route, token := s.router.Current()
	bookRoute, ok := route.(router.BookRoute)
	if !ok {
		fmt.Fprintln(s.out, "No booking form is open.")
		return
	}

	if req.TourID == "" {
		req.TourID = strconv.Itoa(bookRoute.TourID)
	}

	s.views.Book.Submit(ctx, req, token)
}

// ConfirmPayment triggers the mock payment on the active payment view.
func (s *Shell) ConfirmPayment(ctx context.Context) {
	route, token := s.router.Current()
	paymentRoute, ok := route.(router.PaymentRoute)
	if !ok {
		fmt.Fprintln(s.out, "No payment is in progress.")
		return
	}

	s.views.Payment.Pay(ctx, paymentRoute, token)
}

// activate renders one view activation. Panics never escape the shell loop.
func (s *Shell) activate(route router.Route, token router.Token) {
	start := time.Now()

	defer func() {
		if err := recover(); err != nil {
			s.log.Error("PANIC recovered",
				zap.Any("error", err),
				zap.String("view", route.View()),
				zap.Stack("stack"),
			)
			fmt.Fprintln(s.out, "Something went wrong rendering this page.")
		}
	}()

	ctx := context.Background()

	fmt.Fprintln(s.out)
	switch rt := route.(type) {
	case router.HomeRoute:
		s.views.Home.Activate(ctx, token)
	case router.ToursRoute:
		s.views.Tours.Activate(ctx, token)
	case router.TourDetailsRoute:
		s.views.TourDetails.Activate(ctx, rt, token)
	case router.BookRoute:
		s.views.Book.Activate(ctx, rt, token)
	case router.PaymentRoute:
		s.views.Payment.Activate(ctx, rt, token)
	case router.BookingsRoute:
		s.views.Bookings.Activate(ctx, token)
	case router.NotFoundRoute:
		s.views.NotFound.Activate(ctx, rt, token)
	}

	s.log.Info("View activated",
		zap.String("view", route.View()),
		zap.Duration("duration", time.Since(start)),
	)
}
