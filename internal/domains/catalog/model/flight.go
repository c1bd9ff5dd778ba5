package model

import (
	"tripbook/shared/money"

	"github.com/lib/pq"
)

const (
	FlightTableName  = "flights"
	FlightEntityName = "flight"

	FieldID              = "id"
	FieldOriginCode      = "origin_code"
	FieldDestinationCode = "destination_code"
	FieldCarrierCode     = "carrier_code"
	FieldDepartureTime   = "departure_time"
	FieldAvailable       = "available"
)

type Flight struct {
	ID                  string         `db:"id"                    json:"id"`
	CarrierCode         string         `db:"carrier_code"          json:"carrier_code"`
	CarrierName         string         `db:"carrier_name"          json:"carrier_name"`
	FlightNumber        string         `db:"flight_number"         json:"flight_number"`
	Aircraft            string         `db:"aircraft"              json:"aircraft"`
	OriginCode          string         `db:"origin_code"           json:"origin_code"`
	OriginCity          string         `db:"origin_city"           json:"origin_city"`
	OriginTerminal      string         `db:"origin_terminal"       json:"origin_terminal"`
	DestinationCode     string         `db:"destination_code"      json:"destination_code"`
	DestinationCity     string         `db:"destination_city"      json:"destination_city"`
	DestinationTerminal string         `db:"destination_terminal"  json:"destination_terminal"`
	DepartureTime       string         `db:"departure_time"        json:"departure_time"`
	ArrivalTime         string         `db:"arrival_time"          json:"arrival_time"`
	Duration            string         `db:"duration"              json:"duration"`
	Stops               int            `db:"stops"                 json:"stops"`
	Layovers            pq.StringArray `db:"layovers"              json:"layovers"`
	BaggageAllowance    string         `db:"baggage_allowance"     json:"baggage_allowance"`
	Refundable          bool           `db:"refundable"            json:"refundable"`
	PriceEconomy        money.Money    `db:"price_economy"         json:"price_economy"`
	PricePremiumEconomy money.Money    `db:"price_premium_economy" json:"price_premium_economy"`
	PriceBusiness       money.Money    `db:"price_business"        json:"price_business"`
	PriceFirst          money.Money    `db:"price_first"           json:"price_first"`
	Available           bool           `db:"available"             json:"available"`
}

func (f Flight) Prices() PriceTable {
	return PriceTable{
		TierEconomy:        f.PriceEconomy,
		TierPremiumEconomy: f.PricePremiumEconomy,
		TierBusiness:       f.PriceBusiness,
		TierFirst:          f.PriceFirst,
	}
}

// Price resolves the fare for a cabin tier, falling back to economy.
func (f Flight) Price(tier Tier) money.Money {
	return f.Prices().Resolve(tier, TierEconomy)
}

func (f Flight) Title() string {
	return f.CarrierName + " " + f.FlightNumber
}
