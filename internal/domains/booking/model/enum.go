package model

import (
	"fmt"
	"slices"

	"tripbook/shared/failure"
)

type Kind string

const (
	KindFlight Kind = "flight"
	KindHotel  Kind = "hotel"
)

func ParseKind(value string) (Kind, error) {
	kind := Kind(value)
	if kind != KindFlight && kind != KindHotel {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown booking kind %q", value))
	}

	return kind, nil
}

// Role is derived from a traveler's position against the passenger counts.
type Role string

const (
	RoleAdult  Role = "adult"
	RoleChild  Role = "child"
	RoleInfant Role = "infant"
)

// Step is a checkout wizard step. The zero value is the first step.
type Step int

const (
	StepRoster Step = iota
	StepAddOns
	StepContact
	StepReview
)

var stepNames = []string{"roster", "addons", "contact", "review"}

func (s Step) String() string {
	if s < StepRoster || s > StepReview {
		return fmt.Sprintf("step(%d)", int(s))
	}

	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) {
	if s < StepRoster || s > StepReview {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}

	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	idx := slices.Index(stepNames, string(text))
	if idx < 0 {
		return fmt.Errorf("invalid step %q", text)
	}

	*s = Step(idx)

	return nil
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusAbandoned Status = "abandoned"
)

// Occupant names one count of a passenger or room selection.
type Occupant string

const (
	OccupantAdults   Occupant = "adults"
	OccupantChildren Occupant = "children"
	OccupantInfants  Occupant = "infants"
)

// Delta is a single count change: +1 or -1.
type Delta int

const (
	Decrement Delta = -1
	Increment Delta = 1
)

func ParseOccupant(value string) (Occupant, error) {
	occupant := Occupant(value)
	if !slices.Contains([]Occupant{OccupantAdults, OccupantChildren, OccupantInfants}, occupant) {
		return "", ErrUnknownOccupant
	}

	return occupant, nil
}
