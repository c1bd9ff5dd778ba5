package dto

import (
	catalogModel "tripbook/internal/domains/catalog/model"
	catalogDto "tripbook/internal/domains/catalog/model/dto"
	"tripbook/internal/domains/search/model"
	"tripbook/shared/money"
)

// Quote is the price of one result at the selected tier. Total is the pre-tax base for the
// whole party (unit times passengers or rooms).
type Quote struct {
	Tier         catalogModel.Tier `json:"tier"`
	Unit         money.Money       `json:"unit"`
	UnitDisplay  string            `json:"unit_display"`
	Total        money.Money       `json:"total"`
	TotalDisplay string            `json:"total_display"`
}

func NewQuote(tier catalogModel.Tier, unit money.Money, n int, currency string) Quote {
	total := unit * money.Money(n)

	return Quote{
		Tier:         tier,
		Unit:         unit,
		UnitDisplay:  unit.Format(currency),
		Total:        total,
		TotalDisplay: total.Format(currency),
	}
}

type CarrierFacet struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Facets describe the unfiltered result set so every filter option stays visible.
type Facets struct {
	Carriers  []CarrierFacet `json:"carriers,omitempty"`
	Amenities []string       `json:"amenities,omitempty"`
	MinPrice  money.Money    `json:"min_price"`
	MaxPrice  money.Money    `json:"max_price"`
}

type FlightResult struct {
	catalogDto.FlightResponse
	Quote Quote `json:"quote"`
}

type HotelResult struct {
	catalogDto.HotelResponse
	Quote Quote `json:"quote"`
}

type FlightResults struct {
	Query    map[string]string `json:"query"`
	Criteria model.Criteria    `json:"criteria"`
	Sort     model.SortKey     `json:"sort"`
	Total    int               `json:"total"`
	Matched  int               `json:"matched"`
	Facets   Facets            `json:"facets"`
	Items    []FlightResult    `json:"items"`
}

type HotelResults struct {
	Query    map[string]string `json:"query"`
	Criteria model.Criteria    `json:"criteria"`
	Sort     model.SortKey     `json:"sort"`
	Total    int               `json:"total"`
	Matched  int               `json:"matched"`
	Facets   Facets            `json:"facets"`
	Items    []HotelResult     `json:"items"`
}
