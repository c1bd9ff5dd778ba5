package model

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"tripbook/shared/failure"
	"tripbook/shared/money"
)

// SortKey orders a result set. Each item kind accepts its own subset.
type SortKey string

const (
	SortCheapest SortKey = "cheapest"
	SortFastest  SortKey = "fastest"
	SortEarliest SortKey = "earliest"
	SortLatest   SortKey = "latest"

	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRatingHigh SortKey = "rating-high"
	SortRatingLow  SortKey = "rating-low"
	SortDistance   SortKey = "distance"
)

var (
	FlightSortKeys = []SortKey{SortCheapest, SortFastest, SortEarliest, SortLatest}
	HotelSortKeys  = []SortKey{SortPriceLow, SortPriceHigh, SortRatingHigh, SortRatingLow, SortDistance}
)

// ParseSortKey accepts value when it is one of allowed; empty selects the first allowed key.
func ParseSortKey(value string, allowed []SortKey) (SortKey, error) {
	if value == "" {
		return allowed[0], nil
	}

	key := SortKey(value)
	if !slices.Contains(allowed, key) {
		return "", failure.BadRequestFromString(fmt.Sprintf("unsupported sort %q, expected one of %v", value, allowed))
	}

	return key, nil
}

// StopBucket groups flights by stop count.
type StopBucket string

const (
	StopsNonStop StopBucket = "0"
	StopsOne     StopBucket = "1"
	StopsTwoPlus StopBucket = "2+"
)

var StopBuckets = []StopBucket{StopsNonStop, StopsOne, StopsTwoPlus}

func StopBucketOf(stops int) StopBucket {
	switch {
	case stops <= 0:
		return StopsNonStop
	case stops == 1:
		return StopsOne
	default:
		return StopsTwoPlus
	}
}

// TimeOfDay buckets a departure clock time by its hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening, Night}

// TimeOfDayOf maps an hour to its bucket: morning [5,12), afternoon [12,17),
// evening [17,21), night otherwise.
func TimeOfDayOf(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min money.Money `json:"min"`
	Max money.Money `json:"max"`
}

func AnyPrice() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

func (p PriceRange) Contains(price money.Money) bool {
	return price >= p.Min && price <= p.Max
}

// Criteria is one snapshot of independent filter constraints. Empty sets allow everything;
// the price range always applies.
type Criteria struct {
	Price                PriceRange   `json:"price"`
	Carriers             []string     `json:"carriers,omitempty"`
	Stops                []StopBucket `json:"stops,omitempty"`
	DepartureTimes       []TimeOfDay  `json:"departure_times,omitempty"`
	Stars                []int        `json:"stars,omitempty"`
	Amenities            []string     `json:"amenities,omitempty"`
	FreeCancellationOnly bool         `json:"free_cancellation_only"`
	BreakfastOnly        bool         `json:"breakfast_only"`
}

func NewCriteria() Criteria {
	return Criteria{Price: AnyPrice()}
}

func parseEnumList[T ~string](values []string, allowed []T, label string) ([]T, error) {
	res := make([]T, 0, len(values))

	for _, value := range values {
		item := T(strings.ToLower(value))
		if !slices.Contains(allowed, item) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("unknown %s %q, expected one of %v", label, value, allowed))
		}

		res = append(res, item)
	}

	return res, nil
}

func ParseStopBuckets(values []string) ([]StopBucket, error) {
	return parseEnumList(values, StopBuckets, "stops")
}

func ParseTimesOfDay(values []string) ([]TimeOfDay, error) {
	return parseEnumList(values, TimesOfDay, "departure time")
}
