package seed

import "travel-booking/internal/data/entity"

// CanonicalTours returns the fixed list of bookable tour packages.
func CanonicalTours() []entity.Tour {
	return []entity.Tour{
		{
			ID:             1,
			Name:           "European Discovery Tour",
			Destination:    "Paris, Rome & Berlin",
			Price:          1850.00,
			Duration:       10,
			Description:    "Experience the historical grandeur and modern vibrancy of three iconic European capitals over ten unforgettable days. Includes all major landmarks and local cuisine tasting.",
			AvailableDates: "May 2026 - Sept 2026",
			ActivityLevel:  "Moderate",
			Inclusions:     "Flights, 4-star hotels, Breakfast, City Passes",
			Itinerary: []entity.ItineraryItem{
				{Day: "Day 1-3", Details: "Arrival in Paris, Eiffel Tower, Louvre Museum."},
				{Day: "Day 4-6", Details: "Travel to Rome, Colosseum, Vatican City."},
				{Day: "Day 7-10", Details: "Travel to Berlin, Brandenburg Gate, Museum Island."},
			},
		},
		{
			ID:             2,
			Name:           "Thai Island Hopper",
			Destination:    "Phuket, Krabi & Phi Phi",
			Price:          980.50,
			Duration:       7,
			Description:    "A week-long adventure exploring the beautiful beaches and crystal-clear waters of Thailand's Andaman coast. Perfect for relaxation and snorkeling.",
			AvailableDates: "Nov 2025 - Apr 2026",
			ActivityLevel:  "Easy",
			Inclusions:     "Accommodation, Ferry Tickets, Snorkel Gear, One Thai Massage",
			Itinerary: []entity.ItineraryItem{
				{Day: "Day 1-2", Details: "Arrival in Phuket, Patong Beach exploration."},
				{Day: "Day 3-4", Details: "Ferry to Phi Phi Islands, Maya Bay visit."},
				{Day: "Day 5-7", Details: "Krabi, Railay Beach, departure."},
			},
		},
		{
			ID:             3,
			Name:           "Himalayan Trekking Expedition",
			Destination:    "Annapurna Base Camp, Nepal",
			Price:          2500.00,
			Duration:       14,
			Description:    "Challenging but rewarding trek to the heart of the Himalayas, offering unparalleled views of some of the world's highest peaks.",
			AvailableDates: "Mar 2026, Oct 2026",
			ActivityLevel:  "Challenging",
			Inclusions:     "Permits, Guide/Porters, Basic Lodge Accommodation, All Meals during trek",
			Itinerary:      []entity.ItineraryItem{},
		},
	}
}

// featuredCard mirrors the home page card deck.
type featuredCard struct {
	id    int
	tag   string
	title string
}

var featuredCards = []featuredCard{
	{101, "Adventure", "Explore the hidden waterfall deep inside the Amazon Jungle"},
	{102, "Luxury", "Travel through the Islands of Bali in a Private Cruise"},
	{103, "Mystery", "Set Sail in the Atlantic Ocean visiting Uncharted Waters"},
	{104, "Adventure", "Experience Football on Top of the Himalayan Mountains"},
	{105, "Adrenaline", "Ride through the Sahara Desert on a guided camel tour"},
}

// FeaturedTours maps each home page card to a basic bookable package so a
// card id always resolves to a complete tour.
func FeaturedTours() []entity.Tour {
	tours := make([]entity.Tour, len(featuredCards))
	for i, c := range featuredCards {
		tours[i] = entity.Tour{
			ID:             c.id,
			Name:           c.title,
			Destination:    c.tag,
			Description:    c.title,
			Price:          500,
			Duration:       3,
			AvailableDates: "Anytime",
			ActivityLevel:  "Easy",
			Inclusions:     "Basic Package",
		}
	}
	return tours
}
