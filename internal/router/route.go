package router

import "travel-booking/pkg/utils"

// Route is the closed set of views the shell can show. Each variant carries
// only the parameters its view needs, so an unrecognized name can only land
// on the single NotFoundRoute arm.
type Route interface {
	View() string
}

type HomeRoute struct{}

type ToursRoute struct{}

type TourDetailsRoute struct {
	TourID int
}

type BookRoute struct {
	TourID int
}

type PaymentRoute struct {
	BookingID int
}

type BookingsRoute struct{}

type NotFoundRoute struct {
	Requested string
}

func (HomeRoute) View() string        { return "home" }
func (ToursRoute) View() string       { return "tours" }
func (TourDetailsRoute) View() string { return "tour_details" }
func (BookRoute) View() string        { return "book" }
func (PaymentRoute) View() string     { return "payment" }
func (BookingsRoute) View() string    { return "bookings" }
func (NotFoundRoute) View() string    { return "not_found" }

// Resolve maps a raw view name and params to a concrete route. It is total:
// any name is accepted, unknown ones resolve to NotFoundRoute.
func Resolve(name string, params map[string]string) Route {
	switch name {
	case "home":
		return HomeRoute{}
	case "tours":
		return ToursRoute{}
	case "tour_details":
		return TourDetailsRoute{TourID: utils.ParseInt(params["id"], 0)}
	case "book":
		return BookRoute{TourID: utils.ParseInt(params["tourId"], 0)}
	case "payment":
		return PaymentRoute{BookingID: utils.ParseInt(params["bookingId"], 0)}
	case "bookings":
		return BookingsRoute{}
	default:
		return NotFoundRoute{Requested: name}
	}
}
