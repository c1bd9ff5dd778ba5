package model

import (
	"tripbook/shared/money"

	"github.com/lib/pq"
)

const (
	HotelTableName  = "hotels"
	HotelEntityName = "hotel"

	FieldLocationCode = "location_code"
	FieldName         = "name"
)

type Hotel struct {
	ID                string         `db:"id"                 json:"id"`
	Name              string         `db:"name"               json:"name"`
	Location          string         `db:"location"           json:"location"`
	LocationCode      string         `db:"location_code"      json:"location_code"`
	Address           string         `db:"address"            json:"address"`
	Distance          string         `db:"distance"           json:"distance"`
	Stars             int            `db:"stars"              json:"stars"`
	GuestRating       float64        `db:"guest_rating"       json:"guest_rating"`
	ReviewCount       int            `db:"review_count"       json:"review_count"`
	Amenities         pq.StringArray `db:"amenities"          json:"amenities"`
	FreeCancellation  bool           `db:"free_cancellation"  json:"free_cancellation"`
	BreakfastIncluded bool           `db:"breakfast_included" json:"breakfast_included"`
	PriceStandard     money.Money    `db:"price_standard"     json:"price_standard"`
	PriceDeluxe       money.Money    `db:"price_deluxe"       json:"price_deluxe"`
	PriceSuite        money.Money    `db:"price_suite"        json:"price_suite"`
	CheckInPolicy     string         `db:"check_in_policy"    json:"check_in_policy"`
	CheckOutPolicy    string         `db:"check_out_policy"   json:"check_out_policy"`
	Available         bool           `db:"available"          json:"available"`
}

func (h Hotel) Prices() PriceTable {
	return PriceTable{
		TierStandard: h.PriceStandard,
		TierDeluxe:   h.PriceDeluxe,
		TierSuite:    h.PriceSuite,
	}
}

// Price resolves the nightly rate for a room tier, falling back to standard.
func (h Hotel) Price(tier Tier) money.Money {
	return h.Prices().Resolve(tier, TierStandard)
}
