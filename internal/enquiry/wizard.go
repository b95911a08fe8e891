// Package enquiry drives the two-step customized-trip form: trip details,
// then contact details, then a single POST to the enquiry endpoint. Illegal
// combinations (submitting from step one, two submissions in flight) are
// unrepresentable: every transition checks the current state first.
package enquiry

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

type State int

const (
	StateStep1 State = iota + 1
	StateStep2
	StateSubmitting
	StateSucceeded
	StateFailed
)

type Variant string

const (
	// VariantHoliday requires a holiday type on step one.
	VariantHoliday Variant = "holiday"
	// VariantUmrah skips holiday type and may carry an infant count.
	VariantUmrah Variant = "umrah"
)

// FieldErrors maps a form field to its inline message. Nil means the guard
// passed.
type FieldErrors map[string]string

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^[\d+\-\s]{10,20}$`)
)

// ContactDetails is everything captured on step two.
type ContactDetails struct {
	FullName string
	Email    string
	Phone    string
	Message  string
}

// Submitter delivers the assembled payload. A nil return means the server
// answered 201; any error carries the message to show the customer.
type Submitter interface {
	SubmitEnquiry(ctx context.Context, variant Variant, payload Payload) error
}

var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Wizard is the enquiry form state machine. It is not safe for concurrent
// use; like the form it models, one goroutine owns it.
//
// Resubmitting after a failure may duplicate the enquiry server-side when
// the first attempt actually landed but its response was lost; no
// idempotency key is sent.
type Wizard struct {
	variant Variant
	state   State
	trip    TripDetails
	contact ContactDetails
	infants int
	failure string
	sub     Submitter
}

func NewWizard(variant Variant, packageType string, sub Submitter) *Wizard {
	return &Wizard{
		variant: variant,
		state:   StateStep1,
		trip:    defaultTrip(packageType),
		sub:     sub,
	}
}

func (w *Wizard) State() State             { return w.state }
func (w *Wizard) Trip() *TripDetails       { return &w.trip }
func (w *Wizard) Contact() *ContactDetails { return &w.contact }

// FailureMessage is the last submission error shown to the customer.
func (w *Wizard) FailureMessage() string { return w.failure }

func (w *Wizard) SetInfants(n int) {
	if n >= 0 {
		w.infants = n
	}
}

// Advance moves from step one to step two when the trip details validate.
// On guard failure the wizard stays put and the per-field messages are
// returned; nothing else is touched.
func (w *Wizard) Advance() FieldErrors {
	if w.state != StateStep1 {
		return nil
	}
	if errs := w.validateStep1(); len(errs) > 0 {
		return errs
	}
	w.state = StateStep2
	return nil
}

// Back returns to step one. Always allowed from step two or after a failed
// submit; entered data is preserved in both directions.
func (w *Wizard) Back() {
	if w.state == StateStep2 || w.state == StateFailed {
		w.state = StateStep1
	}
}

// Submit validates the contact details and delivers the enquiry. Guard
// failures keep the wizard on step two with no network call. A failed
// delivery is recoverable: the wizard lands in StateFailed and Submit may
// be called again.
func (w *Wizard) Submit(ctx context.Context) FieldErrors {
	switch w.state {
	case StateStep2, StateFailed:
	case StateSubmitting:
		return FieldErrors{"form": ErrSubmitInFlight.Error()}
	default:
		return nil
	}

	if errs := w.validateStep2(); len(errs) > 0 {
		w.state = StateStep2
		return errs
	}

	w.state = StateSubmitting
	w.failure = ""

	if err := w.sub.SubmitEnquiry(ctx, w.variant, w.payload()); err != nil {
		w.state = StateFailed
		w.failure = err.Error()
		return nil
	}

	w.state = StateSucceeded
	return nil
}

// Reset restores the initial empty form; the UI calls this after the
// success modal has been shown.
func (w *Wizard) Reset() {
	w.trip = defaultTrip(w.trip.PackageType)
	w.contact = ContactDetails{}
	w.infants = 0
	w.failure = ""
	w.state = StateStep1
}

func (w *Wizard) validateStep1() FieldErrors {
	errs := FieldErrors{}

	if len(w.trip.Cities) == 0 {
		errs["cities"] = "Add at least one destination"
	} else {
		for _, c := range w.trip.Cities {
			if strings.TrimSpace(c.Destination) == "" || c.Nights < 1 {
				errs["cities"] = "Complete all destination fields"
				break
			}
		}
	}

	if w.trip.StartCity == "" {
		errs["startCity"] = "Required"
	}
	if w.trip.TravelDate == "" {
		errs["travelDate"] = "Required"
	}
	if w.trip.Nationality == "" {
		errs["nationality"] = "Required"
	}
	if w.trip.StarRating == "" {
		errs["starRating"] = "Required"
	}
	if w.variant == VariantHoliday && w.trip.HolidayType == "" {
		errs["holidayType"] = "Required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (w *Wizard) validateStep2() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(w.contact.FullName) == "" {
		errs["fullName"] = "Required"
	}

	switch {
	case strings.TrimSpace(w.contact.Email) == "":
		errs["email"] = "Required"
	case !emailRe.MatchString(w.contact.Email):
		errs["email"] = "Invalid email"
	}

	switch {
	case strings.TrimSpace(w.contact.Phone) == "":
		errs["phone"] = "Required"
	case !phoneRe.MatchString(w.contact.Phone):
		errs["phone"] = "Invalid number"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
