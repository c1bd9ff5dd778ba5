package engine

import (
	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/search/model"
	"tripbook/shared/money"
)

func FlightKind() Kind[catalogModel.Flight] {
	return Kind[catalogModel.Flight]{
		Name:     catalogModel.FlightEntityName,
		SortKeys: model.FlightSortKeys,
		Price: func(f catalogModel.Flight, tier catalogModel.Tier) money.Money {
			return f.Price(tier)
		},
		Carrier:   func(f catalogModel.Flight) string { return f.CarrierCode },
		Stops:     func(f catalogModel.Flight) int { return f.Stops },
		Departure: func(f catalogModel.Flight) string { return f.DepartureTime },
		Duration:  func(f catalogModel.Flight) string { return f.Duration },
	}
}

func HotelKind() Kind[catalogModel.Hotel] {
	return Kind[catalogModel.Hotel]{
		Name:     catalogModel.HotelEntityName,
		SortKeys: model.HotelSortKeys,
		Price: func(h catalogModel.Hotel, tier catalogModel.Tier) money.Money {
			return h.Price(tier)
		},
		Stars:            func(h catalogModel.Hotel) int { return h.Stars },
		Rating:           func(h catalogModel.Hotel) float64 { return h.GuestRating },
		Amenities:        func(h catalogModel.Hotel) []string { return h.Amenities },
		FreeCancellation: func(h catalogModel.Hotel) bool { return h.FreeCancellation },
		Breakfast:        func(h catalogModel.Hotel) bool { return h.BreakfastIncluded },
		Distance:         func(h catalogModel.Hotel) string { return h.Distance },
	}
}
