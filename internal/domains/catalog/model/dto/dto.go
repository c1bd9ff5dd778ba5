package dto

import (
	"tripbook/internal/domains/catalog/model"
	"tripbook/shared/money"
)

type TierPrice struct {
	Tier    model.Tier  `json:"tier"`
	Amount  money.Money `json:"amount"`
	Display string      `json:"display"`
}

func tierPrices(table model.PriceTable, tiers []model.Tier, currency string) []TierPrice {
	prices := make([]TierPrice, 0, len(tiers))

	for _, tier := range tiers {
		amount, ok := table[tier]
		if !ok {
			continue
		}

		prices = append(prices, TierPrice{Tier: tier, Amount: amount, Display: amount.Format(currency)})
	}

	return prices
}

type Endpoint struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time"`
}

type FlightResponse struct {
	ID               string      `json:"id"`
	CarrierCode      string      `json:"carrier_code"`
	CarrierName      string      `json:"carrier_name"`
	FlightNumber     string      `json:"flight_number"`
	Aircraft         string      `json:"aircraft,omitempty"`
	Origin           Endpoint    `json:"origin"`
	Destination      Endpoint    `json:"destination"`
	Duration         string      `json:"duration"`
	Stops            int         `json:"stops"`
	Layovers         []string    `json:"layovers"`
	BaggageAllowance string      `json:"baggage_allowance,omitempty"`
	Refundable       bool        `json:"refundable"`
	Available        bool        `json:"available"`
	Prices           []TierPrice `json:"prices"`
}

func (r *FlightResponse) FromModel(flight model.Flight, currency string) {
	r.ID = flight.ID
	r.CarrierCode = flight.CarrierCode
	r.CarrierName = flight.CarrierName
	r.FlightNumber = flight.FlightNumber
	r.Aircraft = flight.Aircraft
	r.Origin = Endpoint{
		Code:     flight.OriginCode,
		City:     flight.OriginCity,
		Terminal: flight.OriginTerminal,
		Time:     flight.DepartureTime,
	}
	r.Destination = Endpoint{
		Code:     flight.DestinationCode,
		City:     flight.DestinationCity,
		Terminal: flight.DestinationTerminal,
		Time:     flight.ArrivalTime,
	}
	r.Duration = flight.Duration
	r.Stops = flight.Stops
	r.Layovers = append([]string{}, flight.Layovers...)
	r.BaggageAllowance = flight.BaggageAllowance
	r.Refundable = flight.Refundable
	r.Available = flight.Available
	r.Prices = tierPrices(flight.Prices(), model.CabinTiers, currency)
}

type HotelResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Location          string      `json:"location"`
	LocationCode      string      `json:"location_code"`
	Address           string      `json:"address,omitempty"`
	Distance          string      `json:"distance,omitempty"`
	Stars             int         `json:"stars"`
	GuestRating       float64     `json:"guest_rating"`
	ReviewCount       int         `json:"review_count"`
	Amenities         []string    `json:"amenities"`
	FreeCancellation  bool        `json:"free_cancellation"`
	BreakfastIncluded bool        `json:"breakfast_included"`
	CheckInPolicy     string      `json:"check_in_policy,omitempty"`
	CheckOutPolicy    string      `json:"check_out_policy,omitempty"`
	Available         bool        `json:"available"`
	Prices            []TierPrice `json:"prices"`
}

func (r *HotelResponse) FromModel(hotel model.Hotel, currency string) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.Location = hotel.Location
	r.LocationCode = hotel.LocationCode
	r.Address = hotel.Address
	r.Distance = hotel.Distance
	r.Stars = hotel.Stars
	r.GuestRating = hotel.GuestRating
	r.ReviewCount = hotel.ReviewCount
	r.Amenities = append([]string{}, hotel.Amenities...)
	r.FreeCancellation = hotel.FreeCancellation
	r.BreakfastIncluded = hotel.BreakfastIncluded
	r.CheckInPolicy = hotel.CheckInPolicy
	r.CheckOutPolicy = hotel.CheckOutPolicy
	r.Available = hotel.Available
	r.Prices = tierPrices(hotel.Prices(), model.RoomTiers, currency)
}
