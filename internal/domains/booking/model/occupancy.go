package model

import (
	"fmt"
	"time"

	"tripbook/shared/constant"
	"tripbook/shared/failure"
)

const (
	MaxRoomAdults   = 4
	MaxRoomChildren = 3
	MaxRoomInfants  = 2
)

var (
	ErrNoAdults          = failure.BadRequestFromString("at least one adult is required")
	ErrInfantsExceedLaps = failure.BadRequestFromString("infants cannot outnumber adults")
	ErrTooManyPassengers = failure.BadRequestFromString(fmt.Sprintf("at most %d passengers can travel on one booking", constant.MaxPassengers))
	ErrRoomCount         = failure.BadRequestFromString(fmt.Sprintf("a booking holds between 1 and %d rooms", constant.MaxRooms))
	ErrStayDates         = failure.BadRequestFromString("check-out must be after check-in")
	ErrUnknownOccupant   = failure.BadRequestFromString("occupant must be one of adults, children, infants")
)

// PassengerCounts is the party size of a flight booking.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// Apply returns the counts after one change. A change that would break a count rule is
// ignored, except that removing an adult also drops infants down to the adult count.
func (p PassengerCounts) Apply(occupant Occupant, delta Delta) PassengerCounts {
	next := p

	switch occupant {
	case OccupantAdults:
		next.Adults += int(delta)
		next.Infants = min(next.Infants, next.Adults)
	case OccupantChildren:
		next.Children += int(delta)
	case OccupantInfants:
		next.Infants += int(delta)
	}

	if next.Validate() != nil {
		return p
	}

	return next
}

func (p PassengerCounts) Validate() error {
	switch {
	case p.Adults < 1:
		return ErrNoAdults
	case p.Children < 0 || p.Infants < 0:
		return failure.BadRequestFromString("passenger counts cannot be negative")
	case p.Infants > p.Adults:
		return ErrInfantsExceedLaps
	case p.Total() > constant.MaxPassengers:
		return ErrTooManyPassengers
	}

	return nil
}

// RoomOccupancy is the party staying in one room.
type RoomOccupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func NewRoom() RoomOccupancy {
	return RoomOccupancy{Adults: 1}
}

func (r RoomOccupancy) Apply(occupant Occupant, delta Delta) RoomOccupancy {
	next := r

	switch occupant {
	case OccupantAdults:
		next.Adults += int(delta)
	case OccupantChildren:
		next.Children += int(delta)
	case OccupantInfants:
		next.Infants += int(delta)
	}

	if next.Validate() != nil {
		return r
	}

	return next
}

func (r RoomOccupancy) Validate() error {
	if r.Adults < 1 || r.Adults > MaxRoomAdults ||
		r.Children < 0 || r.Children > MaxRoomChildren ||
		r.Infants < 0 || r.Infants > MaxRoomInfants {
		return failure.BadRequestFromString(fmt.Sprintf(
			"each room holds 1-%d adults, up to %d children and up to %d infants",
			MaxRoomAdults, MaxRoomChildren, MaxRoomInfants))
	}

	return nil
}

// RoomList is the room selection of a hotel booking.
type RoomList []RoomOccupancy

func (l RoomList) clone() RoomList {
	return append(RoomList{}, l...)
}

// AddRoom appends a one-adult room unless the list is full.
func (l RoomList) AddRoom() RoomList {
	if len(l) >= constant.MaxRooms {
		return l.clone()
	}

	return append(l.clone(), NewRoom())
}

// RemoveRoom drops room i unless it is the last one left.
func (l RoomList) RemoveRoom(i int) RoomList {
	if len(l) <= 1 || i < 0 || i >= len(l) {
		return l.clone()
	}

	next := l.clone()

	return append(next[:i], next[i+1:]...)
}

func (l RoomList) Apply(i int, occupant Occupant, delta Delta) RoomList {
	next := l.clone()
	if i >= 0 && i < len(next) {
		next[i] = next[i].Apply(occupant, delta)
	}

	return next
}

// Guests counts the adults and children across rooms. Infants share an adult's record.
func (l RoomList) Guests() int {
	total := 0
	for _, room := range l {
		total += room.Adults + room.Children
	}

	return total
}

func (l RoomList) Validate() error {
	if len(l) < 1 || len(l) > constant.MaxRooms {
		return ErrRoomCount
	}

	for _, room := range l {
		if err := room.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Stay is the date range of a hotel booking, formatted YYYY-MM-DD.
type Stay struct {
	CheckIn  string `json:"check_in"  validate:"required,day"`
	CheckOut string `json:"check_out" validate:"required,day"`
}

func (s Stay) Validate() error {
	checkIn, err := time.Parse(constant.DayFormat, s.CheckIn)
	if err != nil {
		return failure.BadRequestFromString("check-in must be a date formatted as YYYY-MM-DD")
	}

	checkOut, err := time.Parse(constant.DayFormat, s.CheckOut)
	if err != nil {
		return failure.BadRequestFromString("check-out must be a date formatted as YYYY-MM-DD")
	}

	if !checkOut.After(checkIn) {
		return ErrStayDates
	}

	return nil
}

func (s Stay) Nights() int {
	checkIn, errIn := time.Parse(constant.DayFormat, s.CheckIn)
	checkOut, errOut := time.Parse(constant.DayFormat, s.CheckOut)

	if errIn != nil || errOut != nil || !checkOut.After(checkIn) {
		return 0
	}

	return int(checkOut.Sub(checkIn).Hours() / 24)
}
