package model

import (
	"time"

	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/shared/money"
)

// PayloadVersion is the wire format version of a submitted booking.
const PayloadVersion = 1

type Contact struct {
	Email       string `json:"email"        validate:"omitempty,email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

// Complete reports whether the fields required to leave the contact step are set.
func (c Contact) Complete() bool {
	return c.Email != "" && c.Phone != ""
}

// Breakdown is a computed price. Units is the passenger count for flights and the room
// count for hotels.
type Breakdown struct {
	UnitPrice  money.Money `json:"unit_price"`
	Units      int         `json:"units"`
	BasePrice  money.Money `json:"base_price"`
	Taxes      money.Money `json:"taxes"`
	AddOnTotal money.Money `json:"add_on_total"`
	Total      money.Money `json:"total"`
}

// Draft is an in-progress checkout. Its ID doubles as the submission idempotency key.
type Draft struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	ItemID        string            `json:"item_id"`
	ItemTitle     string            `json:"item_title"`
	Tier          catalogModel.Tier `json:"tier"`
	UnitPrice     money.Money       `json:"unit_price"`
	Currency      string            `json:"currency"`
	Passengers    PassengerCounts   `json:"passengers"`
	Rooms         RoomList          `json:"rooms,omitempty"`
	Stay          Stay              `json:"stay"`
	Travelers     []Traveler        `json:"travelers,omitempty"`
	Guests        []Guest           `json:"guests,omitempty"`
	AddOns        AddOnSet          `json:"add_ons"`
	Contact       Contact           `json:"contact"`
	TermsAccepted bool              `json:"terms_accepted"`
	Price         Breakdown         `json:"price"`
	Step          Step              `json:"step"`
	Status        Status            `json:"status"`
	OwnerID       string            `json:"owner_id,omitempty"`
	Search        map[string]string `json:"search,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ModifiedAt    time.Time         `json:"modified_at"`
	SubmittedAt   *time.Time        `json:"submitted_at,omitempty"`
}

// Units is the price multiplier of the draft.
func (d *Draft) Units() int {
	if d.Kind == KindHotel {
		return len(d.Rooms)
	}

	return d.Passengers.Total()
}

func (d *Draft) CostMode() CostMode {
	if d.Kind == KindHotel {
		return PerBooking
	}

	return PerTraveler
}

func (d *Draft) Editable() bool {
	return d.Status == StatusDraft
}

type PayloadItem struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Tier  catalogModel.Tier `json:"tier"`
}

// Payload is what a submitted draft hands to the booking backend.
type Payload struct {
	Version     int               `json:"version"`
	DraftID     string            `json:"draft_id"`
	Kind        Kind              `json:"kind"`
	Item        PayloadItem       `json:"item"`
	Passengers  *PassengerCounts  `json:"passengers,omitempty"`
	Rooms       RoomList          `json:"rooms,omitempty"`
	Stay        *Stay             `json:"stay,omitempty"`
	Travelers   []Traveler        `json:"travelers,omitempty"`
	Guests      []Guest           `json:"guests,omitempty"`
	AddOns      []AddOn           `json:"add_ons"`
	Contact     Contact           `json:"contact"`
	Price       Breakdown         `json:"price"`
	Currency    string            `json:"currency"`
	OwnerID     string            `json:"owner_id,omitempty"`
	Search      map[string]string `json:"search,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

func NewPayload(d *Draft, submittedAt time.Time) Payload {
	payload := Payload{
		Version:     PayloadVersion,
		DraftID:     d.ID,
		Kind:        d.Kind,
		Item:        PayloadItem{ID: d.ItemID, Title: d.ItemTitle, Tier: d.Tier},
		AddOns:      d.AddOns.Selected(),
		Contact:     d.Contact,
		Price:       d.Price,
		Currency:    d.Currency,
		OwnerID:     d.OwnerID,
		Search:      d.Search,
		SubmittedAt: submittedAt,
	}

	if d.Kind == KindHotel {
		stay := d.Stay
		payload.Stay = &stay
		payload.Rooms = append(RoomList{}, d.Rooms...)
		payload.Guests = append([]Guest{}, d.Guests...)
	} else {
		passengers := d.Passengers
		payload.Passengers = &passengers
		payload.Travelers = append([]Traveler{}, d.Travelers...)
	}

	return payload
}
