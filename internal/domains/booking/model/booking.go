package model

import (
	"encoding/json"
	"fmt"
	"time"

	"tripbook/shared/model"
	"tripbook/shared/money"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	PassengerTableName  = "booking_passengers"
	PassengerEntityName = "booking passenger"

	FieldID        = "id"
	FieldDraftID   = "draft_id"
	FieldOwnerID   = "owner_id"
	FieldStatus    = "status"
	FieldBookingID = "booking_id"
	FieldPosition  = "position"
	FieldNotified  = "notified_at"

	BookingStatusConfirmed = "confirmed"
)

// Booking is a submitted checkout as stored in postgres. Payload keeps the full wire payload.
type Booking struct {
	ID           string         `db:"id"`
	DraftID      string         `db:"draft_id"`
	Reference    string         `db:"reference"`
	Kind         Kind           `db:"kind"`
	ItemID       string         `db:"item_id"`
	ItemTitle    string         `db:"item_title"`
	Tier         string         `db:"tier"`
	OwnerID      string         `db:"owner_id"`
	ContactEmail string         `db:"contact_email"`
	ContactPhone string         `db:"contact_phone"`
	Units        int            `db:"units"`
	UnitPrice    money.Money    `db:"unit_price"`
	BasePrice    money.Money    `db:"base_price"`
	Taxes        money.Money    `db:"taxes"`
	AddOnTotal   money.Money    `db:"add_on_total"`
	TotalPrice   money.Money    `db:"total_price"`
	Currency     string         `db:"currency"`
	Payload      types.JSONText `db:"payload"`
	ReceiptURL   string         `db:"receipt_url"`
	Status       string         `db:"status"`
	NotifiedAt   *time.Time     `db:"notified_at"`
	model.Metadata
}

// NotificationPatch is the update written once the confirmation went out.
type NotificationPatch struct {
	NotifiedAt time.Time `db:"notified_at"`
}

// Passenger is one roster record of a submitted booking, travelers and guests alike.
type Passenger struct {
	ID             string `db:"id"`
	BookingID      string `db:"booking_id"`
	Position       int    `db:"position"`
	Role           string `db:"role"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Nationality    string `db:"nationality"`
	DocumentType   string `db:"document_type"`
	DocumentNumber string `db:"document_number"`
}

const documentPassport = "passport"

// NewBooking flattens a payload into a booking row.
func NewBooking(payload Payload, id, reference string) (Booking, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to encode booking payload: %w", err)
	}

	owner := payload.OwnerID
	if owner == "" {
		owner = payload.Contact.Email
	}

	return Booking{
		ID:           id,
		DraftID:      payload.DraftID,
		Reference:    reference,
		Kind:         payload.Kind,
		ItemID:       payload.Item.ID,
		ItemTitle:    payload.Item.Title,
		Tier:         string(payload.Item.Tier),
		OwnerID:      payload.OwnerID,
		ContactEmail: payload.Contact.Email,
		ContactPhone: payload.Contact.CountryCode + payload.Contact.Phone,
		Units:        payload.Price.Units,
		UnitPrice:    payload.Price.UnitPrice,
		BasePrice:    payload.Price.BasePrice,
		Taxes:        payload.Price.Taxes,
		AddOnTotal:   payload.Price.AddOnTotal,
		TotalPrice:   payload.Price.Total,
		Currency:     payload.Currency,
		Payload:      types.JSONText(raw),
		Status:       BookingStatusConfirmed,
		Metadata:     model.Stamp(owner, payload.SubmittedAt),
	}, nil
}

// PassengerRows lists the roster of a payload as rows of booking id.
func (p Payload) PassengerRows(bookingID string) []Passenger {
	rows := make([]Passenger, 0, len(p.Travelers)+len(p.Guests))

	for i, traveler := range p.Travelers {
		rows = append(rows, Passenger{
			ID:             uuid.NewString(),
			BookingID:      bookingID,
			Position:       i + 1,
			Role:           string(traveler.Role),
			FirstName:      traveler.FirstName,
			LastName:       traveler.LastName,
			Nationality:    traveler.Nationality,
			DocumentType:   documentPassport,
			DocumentNumber: traveler.PassportNumber,
		})
	}

	for i, guest := range p.Guests {
		rows = append(rows, Passenger{
			ID:             uuid.NewString(),
			BookingID:      bookingID,
			Position:       i + 1,
			Role:           "guest",
			FirstName:      guest.FirstName,
			LastName:       guest.LastName,
			Nationality:    guest.Nationality,
			DocumentType:   guest.IDType,
			DocumentNumber: guest.IDNumber,
		})
	}

	return rows
}

// Confirmation is returned to the customer once a booking is stored.
type Confirmation struct {
	BookingID    string      `json:"booking_id"`
	Reference    string      `json:"reference"`
	DraftID      string      `json:"draft_id"`
	Status       string      `json:"status"`
	Total        money.Money `json:"total"`
	TotalDisplay string      `json:"total_display"`
	ReceiptURL   string      `json:"receipt_url,omitempty"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}

func (b Booking) Confirmation() Confirmation {
	return Confirmation{
		BookingID:    b.ID,
		Reference:    b.Reference,
		DraftID:      b.DraftID,
		Status:       b.Status,
		Total:        b.TotalPrice,
		TotalDisplay: b.TotalPrice.Format(b.Currency),
		ReceiptURL:   b.ReceiptURL,
		SubmittedAt:  b.CreatedAt,
	}
}

// BookingSubmittedEvent is published once per stored booking.
type BookingSubmittedEvent struct {
	BookingID    string      `json:"booking_id"`
	Reference    string      `json:"reference"`
	DraftID      string      `json:"draft_id"`
	Kind         Kind        `json:"kind"`
	ItemID       string      `json:"item_id"`
	ItemTitle    string      `json:"item_title"`
	ContactEmail string      `json:"contact_email"`
	Total        money.Money `json:"total"`
	Currency     string      `json:"currency"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}

func (b Booking) SubmittedEvent() BookingSubmittedEvent {
	return BookingSubmittedEvent{
		BookingID:    b.ID,
		Reference:    b.Reference,
		DraftID:      b.DraftID,
		Kind:         b.Kind,
		ItemID:       b.ItemID,
		ItemTitle:    b.ItemTitle,
		ContactEmail: b.ContactEmail,
		Total:        b.TotalPrice,
		Currency:     b.Currency,
		SubmittedAt:  b.CreatedAt,
	}
}
