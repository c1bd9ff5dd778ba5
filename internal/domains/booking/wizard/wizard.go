// Package wizard drives a booking draft through the checkout steps. Forward moves are
// gated on the data of the current step; going back never clears anything.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/pricing"
	"tripbook/shared/failure"
	"tripbook/shared/timezone"
	"tripbook/shared/validator"
)

var (
	ErrNotEditable  = failure.Conflict("booking draft is no longer editable")
	ErrFirstStep    = failure.BadRequestFromString("already at the first step")
	ErrLastStep     = failure.BadRequestFromString("review is the last step, submit the booking instead")
	ErrNotAtReview  = failure.BadRequestFromString("a booking can only be submitted from the review step")
	ErrWrongRoster  = failure.BadRequestFromString("this booking has no such roster")
	errTermsMissing = failure.BadRequestFromString("terms and conditions must be accepted")
)

const requiredFormat = "%s is required"

// ValidationError is a failed step gate. Index is the zero-based roster position, or -1
// when the failure is not about a roster record.
type ValidationError struct {
	Step  model.Step
	Index int
	Role  model.Role
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Index >= 0 && e.Role != "":
		return fmt.Sprintf("traveler %d (%s): %v", e.Index+1, e.Role, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("guest %d: %v", e.Index+1, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Details names what the client has to fix.
func (e *ValidationError) Details() map[string]any {
	details := map[string]any{
		"step":  e.Step.String(),
		"field": e.Field,
	}

	if e.Index >= 0 {
		details["index"] = e.Index
	}

	if e.Role != "" {
		details["role"] = string(e.Role)
	}

	return details
}

type Wizard struct {
	draft *model.Draft
}

func New(draft *model.Draft) *Wizard {
	return &Wizard{draft: draft}
}

func (w *Wizard) Draft() *model.Draft {
	return w.draft
}

func (w *Wizard) Step() model.Step {
	return w.draft.Step
}

func (w *Wizard) editable() error {
	if !w.draft.Editable() {
		return ErrNotEditable
	}

	return nil
}

func (w *Wizard) touch() {
	w.draft.ModifiedAt = timezone.Now()
}

// Advance moves one step forward when the current step's gate passes.
func (w *Wizard) Advance() error {
	if err := w.editable(); err != nil {
		return err
	}

	switch w.draft.Step {
	case model.StepRoster:
		if err := w.checkRoster(); err != nil {
			return err
		}
	case model.StepContact:
		if err := w.checkContact(); err != nil {
			return err
		}
	case model.StepReview:
		return ErrLastStep
	}

	w.draft.Step++
	w.touch()

	return nil
}

// Retreat moves one step back without validation.
func (w *Wizard) Retreat() error {
	if err := w.editable(); err != nil {
		return err
	}

	if w.draft.Step == model.StepRoster {
		return ErrFirstStep
	}

	w.draft.Step--
	w.touch()

	return nil
}

func rosterIndex(i, size int) error {
	if i < 0 || i >= size {
		return failure.NotFound(fmt.Sprintf("roster position %d not found", i))
	}

	return nil
}

// SetTraveler replaces the record at position i. The role stays the one derived from the
// passenger counts.
func (w *Wizard) SetTraveler(i int, traveler model.Traveler) error {
	if err := w.editable(); err != nil {
		return err
	}

	if w.draft.Kind != model.KindFlight {
		return ErrWrongRoster
	}

	if err := rosterIndex(i, len(w.draft.Travelers)); err != nil {
		return err
	}

	traveler.Role = w.draft.Travelers[i].Role
	w.draft.Travelers[i] = traveler
	w.touch()

	return nil
}

func (w *Wizard) SetGuest(i int, guest model.Guest) error {
	if err := w.editable(); err != nil {
		return err
	}

	if w.draft.Kind != model.KindHotel {
		return ErrWrongRoster
	}

	if err := rosterIndex(i, len(w.draft.Guests)); err != nil {
		return err
	}

	w.draft.Guests[i] = guest
	w.touch()

	return nil
}

// ToggleAddOn flips one add-on and reprices the draft.
func (w *Wizard) ToggleAddOn(id string) error {
	if err := w.editable(); err != nil {
		return err
	}

	if !w.draft.AddOns.Toggle(id) {
		return failure.NotFound(fmt.Sprintf("add-on %q not found", id))
	}

	w.draft.Price = pricing.ForDraft(w.draft)
	w.touch()

	return nil
}

func (w *Wizard) SetContact(contact model.Contact) error {
	if err := w.editable(); err != nil {
		return err
	}

	w.draft.Contact = contact
	w.touch()

	return nil
}

func (w *Wizard) AcceptTerms(accepted bool) error {
	if err := w.editable(); err != nil {
		return err
	}

	w.draft.TermsAccepted = accepted
	w.touch()

	return nil
}

// Submit seals a reviewed draft and returns its payload. Every gate is checked again since
// the roster and contact stay editable after their steps.
func (w *Wizard) Submit(now time.Time) (model.Payload, error) {
	if err := w.editable(); err != nil {
		return model.Payload{}, err
	}

	if w.draft.Step != model.StepReview {
		return model.Payload{}, ErrNotAtReview
	}

	if err := w.checkRoster(); err != nil {
		return model.Payload{}, err
	}

	if err := w.checkContact(); err != nil {
		return model.Payload{}, err
	}

	if !w.draft.TermsAccepted {
		return model.Payload{}, &ValidationError{Step: model.StepReview, Index: -1, Field: "terms_accepted", Err: errTermsMissing}
	}

	w.draft.Price = pricing.ForDraft(w.draft)
	w.draft.Status = model.StatusSubmitted
	w.draft.SubmittedAt = &now
	w.draft.ModifiedAt = now

	return model.NewPayload(w.draft, now), nil
}

func (w *Wizard) Abandon() error {
	if err := w.editable(); err != nil {
		return err
	}

	w.draft.Status = model.StatusAbandoned
	w.touch()

	return nil
}

func (w *Wizard) checkRoster() error {
	for i := range w.draft.Travelers {
		if field, err := validator.FirstInvalidField(&w.draft.Travelers[i]); err != nil {
			return &ValidationError{Step: model.StepRoster, Index: i, Role: w.draft.Travelers[i].Role, Field: field, Err: err}
		}
	}

	for i := range w.draft.Guests {
		if field, err := validator.FirstInvalidField(&w.draft.Guests[i]); err != nil {
			return &ValidationError{Step: model.StepRoster, Index: i, Field: field, Err: err}
		}
	}

	return nil
}

func (w *Wizard) checkContact() error {
	contact := w.draft.Contact

	for _, field := range []struct{ name, value string }{
		{name: "email", value: contact.Email},
		{name: "phone", value: contact.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return &ValidationError{
				Step:  model.StepContact,
				Index: -1,
				Field: field.name,
				Err:   failure.BadRequestFromString(fmt.Sprintf(requiredFormat, field.name)),
			}
		}
	}

	return nil
}
