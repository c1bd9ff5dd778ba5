package dto

import (
	"tripbook/internal/domains/booking/model"
)

// PassengersRequest applies one increment or decrement to a flight party.
type PassengersRequest struct {
	Passengers model.PassengerCounts `json:"passengers"`
	Occupant   string                `json:"occupant"   validate:"required,oneof=adults children infants"`
	Delta      int                   `json:"delta"      validate:"oneof=-1 1"`
}

type PassengersResponse struct {
	model.PassengerCounts
	Total int `json:"total"`
}

// Apply returns the counts after the change. A change that breaks a count rule leaves
// the counts as they were.
func (p *PassengersRequest) Apply() (PassengersResponse, error) {
	occupant, err := model.ParseOccupant(p.Occupant)
	if err != nil {
		return PassengersResponse{}, err //nolint:wrapcheck
	}

	if err = p.Passengers.Validate(); err != nil {
		return PassengersResponse{}, err //nolint:wrapcheck
	}

	counts := p.Passengers.Apply(occupant, model.Delta(p.Delta))

	return PassengersResponse{PassengerCounts: counts, Total: counts.Total()}, nil
}

const (
	RoomActionAdd    = "add"
	RoomActionRemove = "remove"
	RoomActionUpdate = "update"
)

// RoomsRequest applies one room list change. Index and Occupant are read by remove and
// update only.
type RoomsRequest struct {
	Rooms    model.RoomList `json:"rooms"    validate:"required,min=1,max=4"`
	Action   string         `json:"action"   validate:"required,oneof=add remove update"`
	Index    int            `json:"index"    validate:"gte=0"`
	Occupant string         `json:"occupant" validate:"omitempty,oneof=adults children infants"`
	Delta    int            `json:"delta"    validate:"omitempty,oneof=-1 1"`
}

type RoomsResponse struct {
	Rooms  model.RoomList `json:"rooms"`
	Guests int            `json:"guests"`
}

func (r *RoomsRequest) Apply() (RoomsResponse, error) {
	if err := r.Rooms.Validate(); err != nil {
		return RoomsResponse{}, err //nolint:wrapcheck
	}

	var rooms model.RoomList

	switch r.Action {
	case RoomActionAdd:
		rooms = r.Rooms.AddRoom()
	case RoomActionRemove:
		rooms = r.Rooms.RemoveRoom(r.Index)
	default:
		occupant, err := model.ParseOccupant(r.Occupant)
		if err != nil {
			return RoomsResponse{}, err //nolint:wrapcheck
		}

		rooms = r.Rooms.Apply(r.Index, occupant, model.Delta(r.Delta))
	}

	return RoomsResponse{Rooms: rooms, Guests: rooms.Guests()}, nil
}
