package dto_test

import (
	"net/http/httptest"
	"testing"

	"tripbook/internal/domains/search/model"
	"tripbook/internal/domains/search/model/dto"
	"tripbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightSearchRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "full handoff", query: "from=DAC&to=CXB&fromName=Dhaka&toName=Cox%27s+Bazar&departure=2026-11-02&tripType=oneway&adults=2&children=1&infants=1&cabinClass=economy"},
		{name: "defaults", query: ""},
		{name: "infants above adults", query: "adults=1&infants=2", wantErr: true},
		{name: "no adults", query: "adults=0", wantErr: true},
		{name: "too many passengers", query: "adults=5&children=4&infants=1", wantErr: true},
		{name: "bad number", query: "adults=two", wantErr: true},
		{name: "bad date", query: "departure=02-11-2026", wantErr: true},
		{name: "bad trip type", query: "tripType=circle", wantErr: true},
		{name: "inverted price range", query: "minPrice=9000&maxPrice=100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.FlightSearchRequest

			err := req.FromRequest(httptest.NewRequest("GET", "/v1/flights?"+tt.query, nil))
			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestFlightSearchRequest_Criteria(t *testing.T) {
	var req dto.FlightSearchRequest
	require.NoError(t, req.FromRequest(httptest.NewRequest("GET",
		"/v1/flights?minPrice=5000&maxPrice=15000&carriers=BG,+BS&stops=0,2%2B&departureTimes=Morning", nil)))

	criteria, err := req.Criteria()
	require.NoError(t, err)

	assert.Equal(t, model.PriceRange{Min: 5000, Max: 15000}, criteria.Price)
	assert.Equal(t, []string{"BG", "BS"}, criteria.Carriers)
	assert.Equal(t, []model.StopBucket{model.StopsNonStop, model.StopsTwoPlus}, criteria.Stops)
	assert.Equal(t, []model.TimeOfDay{model.Morning}, criteria.DepartureTimes)
	assert.Equal(t, 1, req.Passengers())
	assert.Equal(t, map[string]string{"adults": "1", "children": "0", "infants": "0"}, req.Query())
}

func TestFlightSearchRequest_CriteriaRejectsUnknownBucket(t *testing.T) {
	var req dto.FlightSearchRequest
	require.NoError(t, req.FromRequest(httptest.NewRequest("GET", "/v1/flights?stops=4", nil)))

	_, err := req.Criteria()
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestHotelSearchRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		rooms   int
		wantErr bool
	}{
		{name: "defaults to one room", query: "destinationCode=CXB", rooms: 1},
		{name: "per room occupancy", query: "rooms=2&room1Adults=2&room1Children=1&room2Adults=1&room2Infants=2", rooms: 2},
		{name: "too many rooms", query: "rooms=5", wantErr: true},
		{name: "too many adults", query: "room1Adults=5", wantErr: true},
		{name: "too many children", query: "room1Children=4", wantErr: true},
		{name: "too many infants", query: "room1Infants=3", wantErr: true},
		{name: "check-out before check-in", query: "checkIn=2026-11-05&checkOut=2026-11-05", wantErr: true},
		{name: "bad stars", query: "stars=6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.HotelSearchRequest

			err := req.FromRequest(httptest.NewRequest("GET", "/v1/hotels?"+tt.query, nil))
			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, req.Rooms, tt.rooms)
		})
	}
}

func TestHotelSearchRequest_Query(t *testing.T) {
	var req dto.HotelSearchRequest
	require.NoError(t, req.FromRequest(httptest.NewRequest("GET",
		"/v1/hotels?destination=Cox%27s+Bazar&rooms=1&room1Adults=2&freeCancellation=true&amenities=wifi,pool", nil)))

	criteria := req.Criteria()
	assert.True(t, criteria.FreeCancellationOnly)
	assert.False(t, criteria.BreakfastOnly)
	assert.Equal(t, []string{"wifi", "pool"}, criteria.Amenities)
	assert.Equal(t, model.AnyPrice(), criteria.Price)

	query := req.Query()
	assert.Equal(t, "Cox's Bazar", query["destination"])
	assert.Equal(t, "2", query["room1Adults"])
	assert.Equal(t, "1", query["rooms"])
}
