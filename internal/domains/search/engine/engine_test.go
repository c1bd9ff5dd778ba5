package engine_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/search/engine"
	"tripbook/internal/domains/search/model"
	"tripbook/shared/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flight(id, carrier string, stops int, departure, duration string, economy, business money.Money) catalogModel.Flight {
	return catalogModel.Flight{
		ID:            id,
		CarrierCode:   carrier,
		Stops:         stops,
		DepartureTime: departure,
		Duration:      duration,
		PriceEconomy:  economy,
		PriceBusiness: business,
		Available:     true,
	}
}

func hotel(id string, stars int, rating float64, distance string, standard money.Money, amenities ...string) catalogModel.Hotel {
	return catalogModel.Hotel{
		ID:            id,
		Stars:         stars,
		GuestRating:   rating,
		Distance:      distance,
		PriceStandard: standard,
		Amenities:     amenities,
		Available:     true,
	}
}

func ids[T any](items []T, id func(T) string) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, id(item))
	}

	return res
}

func flightIDs(flights []catalogModel.Flight) []string {
	return ids(flights, func(f catalogModel.Flight) string { return f.ID })
}

func hotelIDs(hotels []catalogModel.Hotel) []string {
	return ids(hotels, func(h catalogModel.Hotel) string { return h.ID })
}

var flights = []catalogModel.Flight{
	flight("f1", "BG", 0, "06:15", "5h0m", 8000, 20000),
	flight("f2", "BS", 1, "13:40", "2h30m", 9000, 21000),
	flight("f3", "bg", 2, "22:05", "7h45m", 8000, 19000),
	flight("f4", "EK", 0, "18:00", "", 12000, 30000),
}

var hotels = []catalogModel.Hotel{
	hotel("h1", 5, 9.1, "0.8 km from center", 15000, "wifi", "pool", "spa"),
	hotel("h2", 3, 7.4, "2.5 km from center", 6000, "wifi"),
	hotel("h3", 4, 8.2, "", 9000, "wifi", "Pool"),
	hotel("h4", 4, 8.2, "1.2 km from center", 9000),
}

func TestFilterFlights(t *testing.T) {
	tests := []struct {
		name     string
		criteria func(c *model.Criteria)
		tier     catalogModel.Tier
		want     []string
	}{
		{
			name:     "no constraints keeps everything",
			criteria: func(*model.Criteria) {},
			tier:     catalogModel.TierEconomy,
			want:     []string{"f1", "f2", "f3", "f4"},
		},
		{
			name:     "price range is inclusive",
			criteria: func(c *model.Criteria) { c.Price = model.PriceRange{Min: 8000, Max: 9000} },
			tier:     catalogModel.TierEconomy,
			want:     []string{"f1", "f2", "f3"},
		},
		{
			name:     "price uses the selected tier",
			criteria: func(c *model.Criteria) { c.Price = model.PriceRange{Min: 0, Max: 20000} },
			tier:     catalogModel.TierBusiness,
			want:     []string{"f1", "f3"},
		},
		{
			name:     "carrier match ignores case",
			criteria: func(c *model.Criteria) { c.Carriers = []string{"BG"} },
			tier:     catalogModel.TierEconomy,
			want:     []string{"f1", "f3"},
		},
		{
			name:     "stop buckets",
			criteria: func(c *model.Criteria) { c.Stops = []model.StopBucket{model.StopsNonStop, model.StopsTwoPlus} },
			tier:     catalogModel.TierEconomy,
			want:     []string{"f1", "f3", "f4"},
		},
		{
			name:     "departure buckets",
			criteria: func(c *model.Criteria) { c.DepartureTimes = []model.TimeOfDay{model.Evening, model.Night} },
			tier:     catalogModel.TierEconomy,
			want:     []string{"f3", "f4"},
		},
		{
			name: "predicates are combined",
			criteria: func(c *model.Criteria) {
				c.Carriers = []string{"bg", "ek"}
				c.Stops = []model.StopBucket{model.StopsNonStop}
				c.Price = model.PriceRange{Min: 0, Max: 10000}
			},
			tier: catalogModel.TierEconomy,
			want: []string{"f1"},
		},
		{
			name: "hotel-only predicates do not apply to flights",
			criteria: func(c *model.Criteria) {
				c.Stars = []int{5}
				c.BreakfastOnly = true
			},
			tier: catalogModel.TierEconomy,
			want: []string{"f1", "f2", "f3", "f4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := model.NewCriteria()
			tt.criteria(&criteria)

			got := engine.Filter(engine.FlightKind(), flights, criteria, tt.tier)
			assert.Equal(t, tt.want, flightIDs(got))
		})
	}
}

func TestFilterHotels(t *testing.T) {
	tests := []struct {
		name     string
		criteria func(c *model.Criteria)
		want     []string
	}{
		{
			name:     "stars",
			criteria: func(c *model.Criteria) { c.Stars = []int{4} },
			want:     []string{"h3", "h4"},
		},
		{
			name:     "amenities are a superset match",
			criteria: func(c *model.Criteria) { c.Amenities = []string{"wifi", "pool"} },
			want:     []string{"h1", "h3"},
		},
		{
			name:     "carrier does not apply to hotels",
			criteria: func(c *model.Criteria) { c.Carriers = []string{"BG"} },
			want:     []string{"h1", "h2", "h3", "h4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := model.NewCriteria()
			tt.criteria(&criteria)

			got := engine.Filter(engine.HotelKind(), hotels, criteria, catalogModel.TierStandard)
			assert.Equal(t, tt.want, hotelIDs(got))
		})
	}
}

func TestFilterHotelFlags(t *testing.T) {
	catalog := []catalogModel.Hotel{
		{ID: "a", FreeCancellation: true},
		{ID: "b", BreakfastIncluded: true},
		{ID: "c", FreeCancellation: true, BreakfastIncluded: true},
	}

	criteria := model.NewCriteria()
	criteria.FreeCancellationOnly = true
	assert.Equal(t, []string{"a", "c"}, hotelIDs(engine.Filter(engine.HotelKind(), catalog, criteria, catalogModel.TierStandard)))

	criteria.BreakfastOnly = true
	assert.Equal(t, []string{"c"}, hotelIDs(engine.Filter(engine.HotelKind(), catalog, criteria, catalogModel.TierStandard)))
}

func randomCriteria(r *rand.Rand) model.Criteria {
	criteria := model.NewCriteria()
	criteria.Price = model.PriceRange{Min: money.Money(r.IntN(10000)), Max: money.Money(8000 + r.IntN(30000))}

	for _, carrier := range []string{"BG", "BS", "EK"} {
		if r.IntN(2) == 0 {
			criteria.Carriers = append(criteria.Carriers, carrier)
		}
	}

	for _, bucket := range model.StopBuckets {
		if r.IntN(2) == 0 {
			criteria.Stops = append(criteria.Stops, bucket)
		}
	}

	for _, bucket := range model.TimesOfDay {
		if r.IntN(2) == 0 {
			criteria.DepartureTimes = append(criteria.DepartureTimes, bucket)
		}
	}

	return criteria
}

// loosen returns criteria at least as permissive as c.
func loosen(r *rand.Rand, c model.Criteria) model.Criteria {
	res := c
	res.Price = model.PriceRange{Min: c.Price.Min - money.Money(r.IntN(2000)), Max: c.Price.Max + money.Money(r.IntN(2000))}

	switch r.IntN(4) {
	case 0:
		res.Carriers = nil
	case 1:
		res.Stops = nil
	case 2:
		res.DepartureTimes = append(slices.Clone(c.DepartureTimes), model.TimesOfDay...)
	}

	return res
}

func TestFilterMonotonicity(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for range 500 {
		strict := randomCriteria(r)
		loose := loosen(r, strict)

		narrow := flightIDs(engine.Filter(engine.FlightKind(), flights, strict, catalogModel.TierEconomy))
		wide := flightIDs(engine.Filter(engine.FlightKind(), flights, loose, catalogModel.TierEconomy))

		for _, id := range narrow {
			require.Contains(t, wide, id, "strict %+v loose %+v", strict, loose)
		}
	}
}

func TestFilterAndSortArePure(t *testing.T) {
	input := slices.Clone(flights)
	criteria := model.NewCriteria()
	criteria.Stops = []model.StopBucket{model.StopsNonStop, model.StopsOne}

	first := engine.Filter(engine.FlightKind(), input, criteria, catalogModel.TierEconomy)
	second := engine.Filter(engine.FlightKind(), input, criteria, catalogModel.TierEconomy)
	assert.Equal(t, first, second)

	sorted, err := engine.Sort(engine.FlightKind(), input, model.SortLatest, catalogModel.TierEconomy)
	require.NoError(t, err)
	again, err := engine.Sort(engine.FlightKind(), input, model.SortLatest, catalogModel.TierEconomy)
	require.NoError(t, err)
	assert.Equal(t, sorted, again)

	assert.Equal(t, flights, input)
}

func TestSortFlights(t *testing.T) {
	tests := []struct {
		key  model.SortKey
		want []string
	}{
		{key: model.SortCheapest, want: []string{"f1", "f3", "f2", "f4"}},
		{key: model.SortFastest, want: []string{"f2", "f1", "f3", "f4"}},
		{key: model.SortEarliest, want: []string{"f1", "f2", "f4", "f3"}},
		{key: model.SortLatest, want: []string{"f3", "f4", "f2", "f1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, err := engine.Sort(engine.FlightKind(), flights, tt.key, catalogModel.TierEconomy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, flightIDs(got))
		})
	}
}

func TestSortHotels(t *testing.T) {
	tests := []struct {
		key  model.SortKey
		want []string
	}{
		{key: model.SortPriceLow, want: []string{"h2", "h3", "h4", "h1"}},
		{key: model.SortPriceHigh, want: []string{"h1", "h3", "h4", "h2"}},
		{key: model.SortRatingHigh, want: []string{"h1", "h3", "h4", "h2"}},
		{key: model.SortRatingLow, want: []string{"h2", "h3", "h4", "h1"}},
		{key: model.SortDistance, want: []string{"h1", "h4", "h2", "h3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, err := engine.Sort(engine.HotelKind(), hotels, tt.key, catalogModel.TierStandard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hotelIDs(got))
		})
	}
}

func TestSortIsStable(t *testing.T) {
	catalog := make([]catalogModel.Flight, 0, 20)
	for i := range 20 {
		catalog = append(catalog, flight(string(rune('a'+i)), "BG", 0, "10:00", "1h0m", money.Money(1000*(i%3)), 0))
	}

	got, err := engine.Sort(engine.FlightKind(), catalog, model.SortCheapest, catalogModel.TierEconomy)
	require.NoError(t, err)

	for i := 1; i < len(got); i++ {
		if got[i-1].PriceEconomy == got[i].PriceEconomy {
			assert.Less(t, got[i-1].ID, got[i].ID)
		}
	}
}

func TestSortRejectsForeignKey(t *testing.T) {
	_, err := engine.Sort(engine.FlightKind(), flights, model.SortDistance, catalogModel.TierEconomy)
	assert.Error(t, err)

	_, err = engine.Sort(engine.HotelKind(), hotels, model.SortFastest, catalogModel.TierStandard)
	assert.Error(t, err)
}

func TestSortEmpty(t *testing.T) {
	got, err := engine.Sort(engine.HotelKind(), nil, model.SortPriceLow, catalogModel.TierStandard)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchScenario(t *testing.T) {
	single := []catalogModel.Flight{flight("only", "BG", 0, "08:00", "5h0m", 10000, 20000)}

	criteria := model.NewCriteria()
	criteria.Price = model.PriceRange{Min: 5000, Max: 15000}
	assert.Len(t, engine.Filter(engine.FlightKind(), single, criteria, catalogModel.TierEconomy), 1)

	criteria.Price = model.PriceRange{Min: 16000, Max: 20000}
	assert.Empty(t, engine.Filter(engine.FlightKind(), single, criteria, catalogModel.TierEconomy))

	pair := []catalogModel.Flight{
		flight("slow", "BG", 0, "08:00", "5h0m", 8000, 0),
		flight("quick", "BS", 0, "09:00", "2h30m", 9000, 0),
	}

	cheapest, err := engine.Sort(engine.FlightKind(), pair, model.SortCheapest, catalogModel.TierEconomy)
	require.NoError(t, err)
	fastest, err := engine.Sort(engine.FlightKind(), pair, model.SortFastest, catalogModel.TierEconomy)
	require.NoError(t, err)

	assert.Equal(t, []string{"slow", "quick"}, flightIDs(cheapest))
	assert.Equal(t, []string{"quick", "slow"}, flightIDs(fastest))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "5h0m", want: 300, ok: true},
		{in: "2h30m", want: 150, ok: true},
		{in: "2h 30m", want: 150, ok: true},
		{in: "45m", want: 45, ok: true},
		{in: "3h", want: 180, ok: true},
		{in: "", ok: false},
		{in: "soon", ok: false},
	}

	for _, tt := range tests {
		got, ok := engine.ParseDuration(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDistance(t *testing.T) {
	got, ok := engine.ParseDistance("1.2 km from center")
	assert.True(t, ok)
	assert.InDelta(t, 1.2, got, 1e-9)

	_, ok = engine.ParseDistance("")
	assert.False(t, ok)
}
