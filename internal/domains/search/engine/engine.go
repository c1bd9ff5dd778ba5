// Package engine filters and orders catalog items of any kind. The algorithms are written
// once; a Kind supplies the accessors an item type supports, and predicates or sort keys
// whose accessor is missing do not apply to that kind.
package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/search/model"
	"tripbook/shared/constant"
	"tripbook/shared/failure"
	"tripbook/shared/money"
)

type Kind[T any] struct {
	Name     string
	SortKeys []model.SortKey

	Price            func(item T, tier catalogModel.Tier) money.Money
	Carrier          func(item T) string
	Stops            func(item T) int
	Departure        func(item T) string
	Duration         func(item T) string
	Stars            func(item T) int
	Rating           func(item T) float64
	Amenities        func(item T) []string
	FreeCancellation func(item T) bool
	Breakfast        func(item T) bool
	Distance         func(item T) string
}

type predicate[T any] func(item T) bool

// Filter returns the items satisfying every active criterion, in input order. The input
// slice and its items are left untouched.
func Filter[T any](kind Kind[T], items []T, criteria model.Criteria, tier catalogModel.Tier) []T {
	predicates := kind.predicates(criteria, tier)
	res := make([]T, 0, len(items))

	for _, item := range items {
		if matches(item, predicates) {
			res = append(res, item)
		}
	}

	return res
}

func matches[T any](item T, predicates []predicate[T]) bool {
	for _, pred := range predicates {
		if !pred(item) {
			return false
		}
	}

	return true
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = struct{}{}
	}

	return set
}

func (k Kind[T]) predicates(criteria model.Criteria, tier catalogModel.Tier) []predicate[T] {
	var predicates []predicate[T]

	if k.Price != nil {
		priceRange := criteria.Price
		predicates = append(predicates, func(item T) bool {
			return priceRange.Contains(k.Price(item, tier))
		})
	}

	if k.Carrier != nil && len(criteria.Carriers) > 0 {
		carriers := lowerSet(criteria.Carriers)
		predicates = append(predicates, func(item T) bool {
			_, ok := carriers[strings.ToLower(k.Carrier(item))]

			return ok
		})
	}

	if k.Stops != nil && len(criteria.Stops) > 0 {
		buckets := slices.Clone(criteria.Stops)
		predicates = append(predicates, func(item T) bool {
			return slices.Contains(buckets, model.StopBucketOf(k.Stops(item)))
		})
	}

	if k.Departure != nil && len(criteria.DepartureTimes) > 0 {
		buckets := slices.Clone(criteria.DepartureTimes)
		predicates = append(predicates, func(item T) bool {
			bucket, ok := DepartureBucket(k.Departure(item))

			return ok && slices.Contains(buckets, bucket)
		})
	}

	if k.Stars != nil && len(criteria.Stars) > 0 {
		stars := slices.Clone(criteria.Stars)
		predicates = append(predicates, func(item T) bool {
			return slices.Contains(stars, k.Stars(item))
		})
	}

	if k.Amenities != nil && len(criteria.Amenities) > 0 {
		wanted := lowerSet(criteria.Amenities)
		predicates = append(predicates, func(item T) bool {
			have := lowerSet(k.Amenities(item))
			for amenity := range wanted {
				if _, ok := have[amenity]; !ok {
					return false
				}
			}

			return true
		})
	}

	if k.FreeCancellation != nil && criteria.FreeCancellationOnly {
		predicates = append(predicates, k.FreeCancellation)
	}

	if k.Breakfast != nil && criteria.BreakfastOnly {
		predicates = append(predicates, k.Breakfast)
	}

	return predicates
}

// DepartureBucket derives the time-of-day bucket of an "HH:MM" clock string.
func DepartureBucket(clock string) (model.TimeOfDay, bool) {
	parsed, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return "", false
	}

	return model.TimeOfDayOf(parsed.Hour()), true
}

// Sort returns a stably ordered copy of items. Keys the kind does not declare are rejected.
func Sort[T any](kind Kind[T], items []T, key model.SortKey, tier catalogModel.Tier) ([]T, error) {
	compare := kind.comparator(key, tier)
	if compare == nil || !slices.Contains(kind.SortKeys, key) {
		return nil, failure.BadRequestFromString(fmt.Sprintf("sort %q is not supported for %s", key, kind.Name))
	}

	res := make([]T, len(items))
	copy(res, items)

	slices.SortStableFunc(res, compare)

	return res, nil
}

func (k Kind[T]) comparator(key model.SortKey, tier catalogModel.Tier) func(a, b T) int {
	switch key {
	case model.SortCheapest, model.SortPriceLow:
		if k.Price == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(k.Price(a, tier), k.Price(b, tier)) }
	case model.SortPriceHigh:
		if k.Price == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(k.Price(b, tier), k.Price(a, tier)) }
	case model.SortFastest:
		if k.Duration == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(durationKey(k.Duration(a)), durationKey(k.Duration(b))) }
	case model.SortEarliest:
		if k.Departure == nil {
			return nil
		}

		return func(a, b T) int { return strings.Compare(k.Departure(a), k.Departure(b)) }
	case model.SortLatest:
		if k.Departure == nil {
			return nil
		}

		return func(a, b T) int { return strings.Compare(k.Departure(b), k.Departure(a)) }
	case model.SortRatingHigh:
		if k.Rating == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(k.Rating(b), k.Rating(a)) }
	case model.SortRatingLow:
		if k.Rating == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(k.Rating(a), k.Rating(b)) }
	case model.SortDistance:
		if k.Distance == nil {
			return nil
		}

		return func(a, b T) int { return cmp.Compare(distanceKey(k.Distance(a)), distanceKey(k.Distance(b))) }
	}

	return nil
}

func durationKey(value string) int {
	minutes, ok := ParseDuration(value)
	if !ok {
		return math.MaxInt
	}

	return minutes
}

func distanceKey(value string) float64 {
	distance, ok := ParseDistance(value)
	if !ok {
		return math.Inf(1)
	}

	return distance
}
