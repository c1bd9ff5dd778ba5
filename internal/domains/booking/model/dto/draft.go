package dto

import (
	"time"

	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/pricing"
	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/shared/money"
)

// CreateDraftRequest starts a checkout for one catalog item. Flights read Passengers,
// hotels read Rooms and the stay dates.
type CreateDraftRequest struct {
	Kind       string                 `json:"kind"       validate:"required,oneof=flight hotel"`
	ItemID     string                 `json:"item_id"    validate:"required"`
	Tier       string                 `json:"tier"`
	Passengers *model.PassengerCounts `json:"passengers"`
	Rooms      model.RoomList         `json:"rooms"      validate:"omitempty,max=4"`
	CheckIn    string                 `json:"check_in"   validate:"omitempty,day"`
	CheckOut   string                 `json:"check_out"  validate:"omitempty,day"`
	Search     map[string]string      `json:"search"`
}

// Item is the catalog entry a draft is created for.
type Item struct {
	ID        string
	Title     string
	Tier      catalogModel.Tier
	UnitPrice money.Money
}

// Validate checks the party and stay of the request against kind.
func (c *CreateDraftRequest) Validate(kind model.Kind) error {
	if kind == model.KindHotel {
		if err := c.rooms().Validate(); err != nil {
			return err //nolint:wrapcheck
		}

		return c.stay().Validate() //nolint:wrapcheck
	}

	return c.passengers().Validate() //nolint:wrapcheck
}

func (c *CreateDraftRequest) passengers() model.PassengerCounts {
	if c.Passengers == nil {
		return model.PassengerCounts{Adults: 1}
	}

	return *c.Passengers
}

func (c *CreateDraftRequest) rooms() model.RoomList {
	if len(c.Rooms) == 0 {
		return model.RoomList{model.NewRoom()}
	}

	return append(model.RoomList{}, c.Rooms...)
}

func (c *CreateDraftRequest) stay() model.Stay {
	return model.Stay{CheckIn: c.CheckIn, CheckOut: c.CheckOut}
}

// ToModel builds a priced draft with its roster allocated up front.
func (c *CreateDraftRequest) ToModel(id string, kind model.Kind, item Item, owner, currency string, now time.Time) *model.Draft {
	draft := &model.Draft{
		ID:         id,
		Kind:       kind,
		ItemID:     item.ID,
		ItemTitle:  item.Title,
		Tier:       item.Tier,
		UnitPrice:  item.UnitPrice,
		Currency:   currency,
		Step:       model.StepRoster,
		Status:     model.StatusDraft,
		OwnerID:    owner,
		Search:     c.Search,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if kind == model.KindHotel {
		draft.Rooms = c.rooms()
		draft.Stay = c.stay()
		draft.Guests = model.BuildGuestRoster(draft.Rooms.Guests())
		draft.AddOns = model.HotelAddOns()
	} else {
		draft.Passengers = c.passengers()
		draft.Travelers = model.BuildTravelerRoster(draft.Passengers)
		draft.AddOns = model.FlightAddOns()
	}

	draft.Price = pricing.ForDraft(draft)

	return draft
}

type TravelerRequest struct {
	Title          string `json:"title"           validate:"omitempty,max=10"`
	FirstName      string `json:"first_name"      validate:"omitempty,max=100"`
	LastName       string `json:"last_name"       validate:"omitempty,max=100"`
	Gender         string `json:"gender"          validate:"omitempty,max=20"`
	BirthDate      string `json:"birth_date"      validate:"omitempty,day"`
	Nationality    string `json:"nationality"     validate:"omitempty,max=60"`
	PassportNumber string `json:"passport_number" validate:"omitempty,max=20"`
	PassportExpiry string `json:"passport_expiry" validate:"omitempty,day"`
}

func (t *TravelerRequest) ToModel() model.Traveler {
	return model.Traveler{
		Title:          t.Title,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Gender:         t.Gender,
		BirthDate:      t.BirthDate,
		Nationality:    t.Nationality,
		PassportNumber: t.PassportNumber,
		PassportExpiry: t.PassportExpiry,
	}
}

type GuestRequest struct {
	FirstName      string `json:"first_name"      validate:"omitempty,max=100"`
	LastName       string `json:"last_name"       validate:"omitempty,max=100"`
	Email          string `json:"email"           validate:"omitempty,email,max=100"`
	Phone          string `json:"phone"           validate:"omitempty,max=20"`
	Nationality    string `json:"nationality"     validate:"omitempty,max=60"`
	IDType         string `json:"id_type"         validate:"omitempty,max=30"`
	IDNumber       string `json:"id_number"       validate:"omitempty,max=30"`
	SpecialRequest string `json:"special_request" validate:"omitempty,max=500"`
}

func (g *GuestRequest) ToModel() model.Guest {
	return model.Guest{
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		Email:          g.Email,
		Phone:          g.Phone,
		Nationality:    g.Nationality,
		IDType:         g.IDType,
		IDNumber:       g.IDNumber,
		SpecialRequest: g.SpecialRequest,
	}
}

type ContactRequest struct {
	Email       string `json:"email"        validate:"omitempty,email,max=100"`
	Phone       string `json:"phone"        validate:"omitempty,max=20"`
	CountryCode string `json:"country_code" validate:"omitempty,max=5"`
}

func (c *ContactRequest) ToModel() model.Contact {
	return model.Contact{Email: c.Email, Phone: c.Phone, CountryCode: c.CountryCode}
}

type TermsRequest struct {
	Accepted bool `json:"accepted"`
}

type PriceResponse struct {
	model.Breakdown
	UnitPriceDisplay  string `json:"unit_price_display"`
	BasePriceDisplay  string `json:"base_price_display"`
	TaxesDisplay      string `json:"taxes_display"`
	AddOnTotalDisplay string `json:"add_on_total_display"`
	TotalDisplay      string `json:"total_display"`
}

func (r *PriceResponse) FromModel(price model.Breakdown, currency string) {
	r.Breakdown = price
	r.UnitPriceDisplay = price.UnitPrice.Format(currency)
	r.BasePriceDisplay = price.BasePrice.Format(currency)
	r.TaxesDisplay = price.Taxes.Format(currency)
	r.AddOnTotalDisplay = price.AddOnTotal.Format(currency)
	r.TotalDisplay = price.Total.Format(currency)
}

type DraftResponse struct {
	ID            string                 `json:"id"`
	Kind          model.Kind             `json:"kind"`
	ItemID        string                 `json:"item_id"`
	ItemTitle     string                 `json:"item_title"`
	Tier          catalogModel.Tier      `json:"tier"`
	Step          model.Step             `json:"step"`
	Status        model.Status           `json:"status"`
	Passengers    *model.PassengerCounts `json:"passengers,omitempty"`
	Rooms         model.RoomList         `json:"rooms,omitempty"`
	Stay          *model.Stay            `json:"stay,omitempty"`
	Nights        int                    `json:"nights,omitempty"`
	Travelers     []model.Traveler       `json:"travelers,omitempty"`
	Guests        []model.Guest          `json:"guests,omitempty"`
	AddOns        []model.AddOn          `json:"add_ons"`
	Contact       model.Contact          `json:"contact"`
	TermsAccepted bool                   `json:"terms_accepted"`
	Price         PriceResponse          `json:"price"`
	Currency      string                 `json:"currency"`
	Search        map[string]string      `json:"search,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	ModifiedAt    time.Time              `json:"modified_at"`
	SubmittedAt   *time.Time             `json:"submitted_at,omitempty"`
}

func (r *DraftResponse) FromModel(draft *model.Draft) {
	r.ID = draft.ID
	r.Kind = draft.Kind
	r.ItemID = draft.ItemID
	r.ItemTitle = draft.ItemTitle
	r.Tier = draft.Tier
	r.Step = draft.Step
	r.Status = draft.Status
	r.AddOns = append([]model.AddOn{}, draft.AddOns...)
	r.Contact = draft.Contact
	r.TermsAccepted = draft.TermsAccepted
	r.Price.FromModel(draft.Price, draft.Currency)
	r.Currency = draft.Currency
	r.Search = draft.Search
	r.CreatedAt = draft.CreatedAt
	r.ModifiedAt = draft.ModifiedAt
	r.SubmittedAt = draft.SubmittedAt

	if draft.Kind == model.KindHotel {
		stay := draft.Stay
		r.Stay = &stay
		r.Nights = stay.Nights()
		r.Rooms = append(model.RoomList{}, draft.Rooms...)
		r.Guests = append([]model.Guest{}, draft.Guests...)

		return
	}

	passengers := draft.Passengers
	r.Passengers = &passengers
	r.Travelers = append([]model.Traveler{}, draft.Travelers...)
}
