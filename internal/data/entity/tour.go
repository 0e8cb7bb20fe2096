package entity

// ItineraryItem is one leg of a tour itinerary.
type ItineraryItem struct {
	Day     string
	Details string
}

// Tour is a seed catalog entry. Tours are created once at process start and
// never mutated or deleted.
type Tour struct {
	ID             int
	Name           string
	Destination    string
	Description    string
	Price          float64 // per person
	Duration       int     // days
	AvailableDates string
	ActivityLevel  string
	Inclusions     string
	Itinerary      []ItineraryItem
}
