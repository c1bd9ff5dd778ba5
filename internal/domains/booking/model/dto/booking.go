package dto

import (
	"strings"
	"time"

	"tripbook/internal/domains/booking/model"
	"tripbook/shared"
	gDto "tripbook/shared/dto"
)

type PassengerResponse struct {
	Position       int    `json:"position"`
	Role           string `json:"role"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Nationality    string `json:"nationality,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

type BookingResponse struct {
	ID           string              `json:"id"`
	DraftID      string              `json:"draft_id"`
	Reference    string              `json:"reference"`
	Kind         model.Kind          `json:"kind"`
	ItemID       string              `json:"item_id"`
	ItemTitle    string              `json:"item_title"`
	Tier         string              `json:"tier"`
	ContactEmail string              `json:"contact_email"`
	ContactPhone string              `json:"contact_phone"`
	Price        PriceResponse       `json:"price"`
	Currency     string              `json:"currency"`
	ReceiptURL   string              `json:"receipt_url,omitempty"`
	Status       string              `json:"status"`
	NotifiedAt   *time.Time          `json:"notified_at,omitempty"`
	Passengers   []PassengerResponse `json:"passengers,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.DraftID = booking.DraftID
	r.Reference = booking.Reference
	r.Kind = booking.Kind
	r.ItemID = booking.ItemID
	r.ItemTitle = booking.ItemTitle
	r.Tier = booking.Tier
	r.ContactEmail = booking.ContactEmail
	r.ContactPhone = booking.ContactPhone
	r.Price.FromModel(model.Breakdown{
		UnitPrice:  booking.UnitPrice,
		Units:      booking.Units,
		BasePrice:  booking.BasePrice,
		Taxes:      booking.Taxes,
		AddOnTotal: booking.AddOnTotal,
		Total:      booking.TotalPrice,
	}, booking.Currency)
	r.Currency = booking.Currency
	r.ReceiptURL = booking.ReceiptURL
	r.Status = booking.Status
	r.NotifiedAt = booking.NotifiedAt
	r.Metadata.FromModel(booking.Metadata)
}

const visibleDocumentDigits = 3

// maskDocument hides all but the last few characters of a passport or id number.
func maskDocument(number string) string {
	runes := []rune(number)
	if len(runes) <= visibleDocumentDigits {
		return strings.Repeat("*", len(runes))
	}

	hidden := len(runes) - visibleDocumentDigits

	return strings.Repeat("*", hidden) + string(runes[hidden:])
}

// WithPassengers attaches the roster with document numbers masked.
func (r *BookingResponse) WithPassengers(passengers []model.Passenger) {
	r.Passengers = make([]PassengerResponse, len(passengers))
	for i, passenger := range passengers {
		r.Passengers[i] = PassengerResponse{
			Position:       passenger.Position,
			Role:           passenger.Role,
			FirstName:      passenger.FirstName,
			LastName:       passenger.LastName,
			Nationality:    passenger.Nationality,
			DocumentType:   passenger.DocumentType,
			DocumentNumber: maskDocument(passenger.DocumentNumber),
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
