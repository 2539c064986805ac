// Package booking owns the transient state of the booking form, from
// opening it for a unit through submission or abandonment.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"storkeep-cli/api"
	"storkeep-cli/funnel"
)

type State int

const (
	StateIdle State = iota
	StateFormOpen
	StateSubmitting
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFormOpen:
		return "form_open"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Draft is the booking form. Dates are local YYYY-MM-DD and converted
// to absolute timestamps only at submission.
type Draft struct {
	CustomerName    string `validate:"required"`
	CustomerEmail   string `validate:"required,email"`
	CustomerPhone   string `validate:"required"`
	PaymentOption   string `validate:"required,oneof=pay_now_move_now pay_now_move_later pay_later_move_later"`
	PricingPeriod   string `validate:"required,oneof=daily weekly monthly"`
	StartDate       string `validate:"required,datetime=2006-01-02"`
	MoveInDate      string `validate:"required,datetime=2006-01-02"`
	SpecialRequests string
}

type Submitter interface {
	CreateBooking(ctx context.Context, payload api.BookingRequest) (api.Booking, error)
}

type Emitter interface {
	Track(eventType string, metadata map[string]any)
}

type Flow struct {
	client   Submitter
	events   Emitter
	validate *validator.Validate

	// onCompleted runs after a successful submission, before the flow
	// settles in StateCompleted. Used to refresh the unit list, since
	// availability may have changed.
	onCompleted func(api.Booking)

	state   State
	unit    api.VirtualUnit
	draft   Draft
	lastErr error
}

func NewFlow(client Submitter, events Emitter, onCompleted func(api.Booking)) *Flow {
	return &Flow{
		client:      client,
		events:      events,
		validate:    validator.New(),
		onCompleted: onCompleted,
		state:       StateIdle,
	}
}

func (f *Flow) State() State { return f.state }

// LastError holds the failure from the most recent submit attempt.
func (f *Flow) LastError() error { return f.lastErr }

// Open starts the form for a unit with its defaults: today for both
// dates, the first payment option, monthly pricing. Emits
// booking_started.
func (f *Flow) Open(unit api.VirtualUnit) {
	today := time.Now().Format("2006-01-02")
	f.unit = unit
	f.draft = Draft{
		PaymentOption: api.PaymentOptions[0],
		PricingPeriod: api.PeriodMonthly,
		StartDate:     today,
		MoveInDate:    today,
	}
	f.state = StateFormOpen
	f.lastErr = nil
	f.events.Track(funnel.EventBookingStarted, map[string]any{"unit_id": unit.ID})
}

// Form exposes the draft for editing while the form is open.
func (f *Flow) Form() *Draft { return &f.draft }

func (f *Flow) Unit() api.VirtualUnit { return f.unit }

// Submit validates the draft, converts dates to absolute timestamps,
// and sends the booking. On success booking_completed is emitted and
// the completion hook runs. On failure the form stays editable for a
// retry; nothing is emitted and nothing retries automatically.
func (f *Flow) Submit(ctx context.Context) (api.Booking, error) {
	if f.state != StateFormOpen && f.state != StateFailed {
		return api.Booking{}, fmt.Errorf("no booking form open")
	}

	if err := f.validate.Struct(f.draft); err != nil {
		f.lastErr = err
		return api.Booking{}, err
	}

	startDate, err := localDateToUTC(f.draft.StartDate)
	if err != nil {
		f.lastErr = err
		return api.Booking{}, err
	}
	moveInDate, err := localDateToUTC(f.draft.MoveInDate)
	if err != nil {
		f.lastErr = err
		return api.Booking{}, err
	}

	payload := api.BookingRequest{
		VirtualUnitID:   f.unit.ID,
		CustomerName:    f.draft.CustomerName,
		CustomerEmail:   f.draft.CustomerEmail,
		CustomerPhone:   f.draft.CustomerPhone,
		PaymentOption:   f.draft.PaymentOption,
		PricingPeriod:   f.draft.PricingPeriod,
		StartDate:       startDate,
		MoveInDate:      moveInDate,
		SpecialRequests: f.draft.SpecialRequests,
	}

	f.state = StateSubmitting
	booking, err := f.client.CreateBooking(ctx, payload)
	if err != nil {
		f.state = StateFailed
		f.lastErr = err
		return api.Booking{}, err
	}

	f.events.Track(funnel.EventBookingCompleted, map[string]any{
		"unit_id":    f.unit.ID,
		"booking_id": booking.ID,
	})
	if f.onCompleted != nil {
		f.onCompleted(booking)
	}
	f.state = StateCompleted
	f.lastErr = nil
	return booking, nil
}

// Cancel abandons an open form. It emits booking_abandoned exactly once
// per opened form and returns the flow to idle; calling it again
// without reopening is a no-op.
func (f *Flow) Cancel() {
	if f.state != StateFormOpen && f.state != StateFailed {
		return
	}
	f.events.Track(funnel.EventBookingAbandoned, map[string]any{"unit_id": f.unit.ID})
	f.state = StateIdle
}

func localDateToUTC(date string) (string, error) {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return parsed.UTC().Format(time.RFC3339), nil
}
