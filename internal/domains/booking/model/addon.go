package model

import (
	"tripbook/shared/money"
)

// CostMode says how an add-on price scales with the booking. Flight add-ons are charged
// per traveler, hotel add-ons once per booking.
type CostMode int

const (
	PerTraveler CostMode = iota
	PerBooking
)

type AddOn struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    money.Money `json:"price"`
	Selected bool        `json:"selected"`
}

// AddOnSet is a fixed list of optional extras with independent selection flags.
type AddOnSet []AddOn

// Toggle flips the selection of id and reports whether id exists.
func (s AddOnSet) Toggle(id string) bool {
	for i := range s {
		if s[i].ID == id {
			s[i].Selected = !s[i].Selected

			return true
		}
	}

	return false
}

func (s AddOnSet) Selected() []AddOn {
	res := make([]AddOn, 0, len(s))

	for _, addOn := range s {
		if addOn.Selected {
			res = append(res, addOn)
		}
	}

	return res
}

// Cost sums the selected add-ons. With PerTraveler every price is multiplied by n.
func (s AddOnSet) Cost(mode CostMode, n int) money.Money {
	var total money.Money

	for _, addOn := range s.Selected() {
		if mode == PerTraveler {
			total += addOn.Price * money.Money(n)
		} else {
			total += addOn.Price
		}
	}

	return total
}

func FlightAddOns() AddOnSet {
	return AddOnSet{
		{ID: "extra-baggage", Name: "Extra baggage (20 kg)", Price: 2500},
		{ID: "meal", Name: "In-flight meal", Price: 800},
		{ID: "priority-boarding", Name: "Priority boarding", Price: 1200},
		{ID: "travel-insurance", Name: "Travel insurance", Price: 1500},
		{ID: "seat-selection", Name: "Seat selection", Price: 600},
	}
}

func HotelAddOns() AddOnSet {
	return AddOnSet{
		{ID: "airport-transfer", Name: "Airport transfer", Price: 2500},
		{ID: "breakfast", Name: "Daily breakfast", Price: 1200},
		{ID: "late-checkout", Name: "Late checkout", Price: 1500},
		{ID: "spa", Name: "Spa access", Price: 3000},
	}
}
