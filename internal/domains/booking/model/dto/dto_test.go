package dto_test

import (
	"testing"
	"time"

	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/model/dto"
	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/shared/failure"
	"tripbook/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func TestCreateDraftRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    model.Kind
		req     dto.CreateDraftRequest
		wantErr error
	}{
		{
			name: "flight defaults to one adult",
			kind: model.KindFlight,
		},
		{
			name:    "flight infants above adults",
			kind:    model.KindFlight,
			req:     dto.CreateDraftRequest{Passengers: &model.PassengerCounts{Adults: 1, Infants: 2}},
			wantErr: model.ErrInfantsExceedLaps,
		},
		{
			name:    "flight over nine passengers",
			kind:    model.KindFlight,
			req:     dto.CreateDraftRequest{Passengers: &model.PassengerCounts{Adults: 5, Children: 3, Infants: 2}},
			wantErr: model.ErrTooManyPassengers,
		},
		{
			name: "hotel with dates",
			kind: model.KindHotel,
			req:  dto.CreateDraftRequest{CheckIn: "2026-11-01", CheckOut: "2026-11-03"},
		},
		{
			name:    "hotel check-out before check-in",
			kind:    model.KindHotel,
			req:     dto.CreateDraftRequest{CheckIn: "2026-11-03", CheckOut: "2026-11-03"},
			wantErr: model.ErrStayDates,
		},
		{
			name: "hotel with five rooms",
			kind: model.KindHotel,
			req: dto.CreateDraftRequest{
				Rooms:    model.RoomList{model.NewRoom(), model.NewRoom(), model.NewRoom(), model.NewRoom(), model.NewRoom()},
				CheckIn:  "2026-11-01",
				CheckOut: "2026-11-03",
			},
			wantErr: model.ErrRoomCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.kind)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateDraftRequest_ToModel(t *testing.T) {
	t.Run("flight", func(t *testing.T) {
		req := dto.CreateDraftRequest{Passengers: &model.PassengerCounts{Adults: 2, Children: 1, Infants: 1}}
		item := dto.Item{ID: "FL-1", Title: "Biman BG-147", Tier: catalogModel.TierEconomy, UnitPrice: 8000}

		draft := req.ToModel("draft-1", model.KindFlight, item, "user-1", "BDT", now)

		require.Len(t, draft.Travelers, 4)
		assert.Equal(t, model.RoleInfant, draft.Travelers[3].Role)
		assert.Equal(t, model.StepRoster, draft.Step)
		assert.Equal(t, model.StatusDraft, draft.Status)
		assert.Equal(t, model.Breakdown{UnitPrice: 8000, Units: 4, BasePrice: 32000, Taxes: 4800, Total: 36800}, draft.Price)
		assert.Empty(t, draft.Guests)
	})

	t.Run("hotel", func(t *testing.T) {
		req := dto.CreateDraftRequest{
			Rooms:    model.RoomList{{Adults: 2, Children: 1, Infants: 1}, {Adults: 1}},
			CheckIn:  "2026-11-01",
			CheckOut: "2026-11-03",
		}
		item := dto.Item{ID: "HT-1", Title: "Sea Pearl", Tier: catalogModel.TierDeluxe, UnitPrice: 10000}

		draft := req.ToModel("draft-2", model.KindHotel, item, "", "BDT", now)

		assert.Len(t, draft.Guests, 4)
		assert.Empty(t, draft.Travelers)
		assert.Equal(t, 2, draft.Units())
		assert.Equal(t, model.Breakdown{UnitPrice: 10000, Units: 2, BasePrice: 20000, Taxes: 3000, Total: 23000}, draft.Price)
	})
}

func TestDraftResponse_FromModel(t *testing.T) {
	req := dto.CreateDraftRequest{CheckIn: "2026-11-01", CheckOut: "2026-11-04"}
	draft := req.ToModel("draft-3", model.KindHotel, dto.Item{ID: "HT-1", UnitPrice: 12345}, "", "BDT", now)

	var res dto.DraftResponse
	res.FromModel(draft)

	assert.Nil(t, res.Passengers)
	require.NotNil(t, res.Stay)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "BDT 12,345", res.Price.UnitPriceDisplay)
	assert.Equal(t, "BDT 14,197", res.Price.TotalDisplay)

	res.AddOns[0].Selected = true
	assert.False(t, draft.AddOns[0].Selected)
}

func TestPassengersRequest_Apply(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.PassengersRequest
		want    model.PassengerCounts
		wantErr bool
	}{
		{
			name: "add infant",
			req:  dto.PassengersRequest{Passengers: model.PassengerCounts{Adults: 1}, Occupant: "infants", Delta: 1},
			want: model.PassengerCounts{Adults: 1, Infants: 1},
		},
		{
			name: "infant beyond adults is ignored",
			req:  dto.PassengersRequest{Passengers: model.PassengerCounts{Adults: 1, Infants: 1}, Occupant: "infants", Delta: 1},
			want: model.PassengerCounts{Adults: 1, Infants: 1},
		},
		{
			name: "removing adult clamps infants",
			req:  dto.PassengersRequest{Passengers: model.PassengerCounts{Adults: 2, Infants: 2}, Occupant: "adults", Delta: -1},
			want: model.PassengerCounts{Adults: 1, Infants: 1},
		},
		{
			name:    "invalid starting counts",
			req:     dto.PassengersRequest{Passengers: model.PassengerCounts{}, Occupant: "adults", Delta: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.req.Apply()
			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.PassengerCounts)
			assert.Equal(t, tt.want.Total(), res.Total)
		})
	}
}

func TestPassengersRequest_RejectsZeroDelta(t *testing.T) {
	req := dto.PassengersRequest{Passengers: model.PassengerCounts{Adults: 1}, Occupant: "adults"}

	assert.Error(t, validator.ValidateStruct(&req))
}

func TestRoomsRequest_Apply(t *testing.T) {
	full := model.RoomList{model.NewRoom(), model.NewRoom(), model.NewRoom(), model.NewRoom()}

	tests := []struct {
		name       string
		req        dto.RoomsRequest
		wantRooms  int
		wantGuests int
	}{
		{name: "add", req: dto.RoomsRequest{Rooms: model.RoomList{model.NewRoom()}, Action: dto.RoomActionAdd}, wantRooms: 2, wantGuests: 2},
		{name: "add past the cap", req: dto.RoomsRequest{Rooms: full, Action: dto.RoomActionAdd}, wantRooms: 4, wantGuests: 4},
		{name: "remove last room", req: dto.RoomsRequest{Rooms: model.RoomList{model.NewRoom()}, Action: dto.RoomActionRemove}, wantRooms: 1, wantGuests: 1},
		{
			name:       "update children",
			req:        dto.RoomsRequest{Rooms: model.RoomList{model.NewRoom()}, Action: dto.RoomActionUpdate, Occupant: "children", Delta: 1},
			wantRooms:  1,
			wantGuests: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.req.Apply()
			require.NoError(t, err)
			assert.Len(t, res.Rooms, tt.wantRooms)
			assert.Equal(t, tt.wantGuests, res.Guests)
		})
	}
}

func TestRoomsRequest_UpdateNeedsOccupant(t *testing.T) {
	req := dto.RoomsRequest{Rooms: model.RoomList{model.NewRoom()}, Action: dto.RoomActionUpdate, Delta: 1}

	_, err := req.Apply()
	assert.ErrorIs(t, err, model.ErrUnknownOccupant)
}

func TestBookingResponse_WithPassengersMasksDocuments(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "passport", number: "EB0123456", want: "******456"},
		{name: "short", number: "A12", want: "***"},
		{name: "empty", number: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.BookingResponse
			res.WithPassengers([]model.Passenger{{Position: 1, Role: "adult", FirstName: "Rahim", DocumentNumber: tt.number}})

			require.Len(t, res.Passengers, 1)
			assert.Equal(t, tt.want, res.Passengers[0].DocumentNumber)
			assert.Equal(t, "Rahim", res.Passengers[0].FirstName)
		})
	}
}
