package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/router"
	"travel-booking/internal/shell"
)

// RunShell drives the session shell from a command stream until EOF or quit.
// The command reader is the stand-in for browser navigation events; every
// line becomes one navigation or form action.
func RunShell(sh *shell.Shell, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "TRVL travel booking (type 'help' for commands)")

	// initial render
	sh.Navigate(router.HomeRoute{})

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		ctx := context.Background()

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp(out)
		case "home":
			sh.Navigate(router.HomeRoute{})
		case "tours":
			sh.Navigate(router.ToursRoute{})
		case "tour":
			sh.Open("tour_details", map[string]string{"id": arg(fields, 1)})
		case "book":
			sh.Open("book", map[string]string{"tourId": arg(fields, 1)})
		case "payment":
			sh.Open("payment", map[string]string{"bookingId": arg(fields, 1)})
		case "bookings":
			sh.Navigate(router.BookingsRoute{})
		case "submit":
			sh.SubmitBooking(ctx, parseBookingForm(fields[1:]))
		case "pay":
			sh.ConfirmPayment(ctx)
		case "subscribe":
			sh.Subscribe(arg(fields, 1))
		default:
			// any other word is treated as a view name; unknown names
			// render the not found page instead of erroring
			sh.Open(fields[0], map[string]string{})
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  home                    show the home page")
	fmt.Fprintln(out, "  tours                   list all tour packages")
	fmt.Fprintln(out, "  tour <id>               show tour details")
	fmt.Fprintln(out, "  book <tourId>           open the booking form")
	fmt.Fprintln(out, "  submit key=value ...    submit the booking form (name, email, phone, guests, date)")
	fmt.Fprintln(out, "  payment <bookingId>     open the payment page")
	fmt.Fprintln(out, "  pay                     confirm the mock payment")
	fmt.Fprintln(out, "  bookings                list session bookings")
	fmt.Fprintln(out, "  subscribe <email>       join the newsletter")
	fmt.Fprintln(out, "  quit                    leave")
}

func arg(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// parseBookingForm reads key=value pairs into the booking request. Guests
// default to 1 and the date to today, like the original form.
func parseBookingForm(args []string) *request.CreateBookingRequest {
	req := &request.CreateBookingRequest{
		NumberOfGuests: "1",
		BookingDate:    time.Now().Format("2006-01-02"),
	}

	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			continue
		}
		switch key {
		case "name":
			req.CustomerName = value
		case "email":
			req.Email = value
		case "phone":
			req.Phone = value
		case "guests":
			req.NumberOfGuests = value
		case "date":
			req.BookingDate = value
		case "tourId":
			req.TourID = value
		}
	}

	return req
}
