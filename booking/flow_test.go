package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storkeep-cli/api"
	"storkeep-cli/funnel"
)

type fakeSubmitter struct {
	payload api.BookingRequest
	booking api.Booking
	err     error
	calls   int
}

func (f *fakeSubmitter) CreateBooking(_ context.Context, payload api.BookingRequest) (api.Booking, error) {
	f.calls++
	f.payload = payload
	if f.err != nil {
		return api.Booking{}, f.err
	}
	return f.booking, nil
}

type recordingEmitter struct {
	events []api.FunnelEvent
}

func (r *recordingEmitter) Track(eventType string, metadata map[string]any) {
	r.events = append(r.events, api.FunnelEvent{EventType: eventType, Metadata: metadata})
}

func (r *recordingEmitter) count(eventType string) int {
	n := 0
	for _, event := range r.events {
		if event.EventType == eventType {
			n++
		}
	}
	return n
}

func validDraft(draft *Draft) {
	draft.CustomerName = "Pat Doe"
	draft.CustomerEmail = "pat@example.com"
	draft.CustomerPhone = "555-0100"
	draft.StartDate = "2024-01-01"
	draft.MoveInDate = "2024-01-02"
}

func TestOpenSetsDefaults(t *testing.T) {
	emitter := &recordingEmitter{}
	flow := NewFlow(&fakeSubmitter{}, emitter, nil)

	flow.Open(api.VirtualUnit{ID: "u1"})

	assert.Equal(t, StateFormOpen, flow.State())
	draft := flow.Form()
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, api.PaymentOptions[0], draft.PaymentOption)
	assert.Equal(t, api.PeriodMonthly, draft.PricingPeriod)
	assert.Equal(t, today, draft.StartDate)
	assert.Equal(t, today, draft.MoveInDate)

	require.Len(t, emitter.events, 1)
	assert.Equal(t, funnel.EventBookingStarted, emitter.events[0].EventType)
	assert.Equal(t, "u1", emitter.events[0].Metadata["unit_id"])
}

func TestSubmitSuccess(t *testing.T) {
	submitter := &fakeSubmitter{booking: api.Booking{ID: "b1", VirtualUnitID: "u1"}}
	emitter := &recordingEmitter{}
	var hookBooking api.Booking
	flow := NewFlow(submitter, emitter, func(b api.Booking) { hookBooking = b })

	flow.Open(api.VirtualUnit{ID: "u1"})
	validDraft(flow.Form())

	booked, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, flow.State())
	assert.Equal(t, "b1", booked.ID)
	assert.Equal(t, "b1", hookBooking.ID)

	assert.Equal(t, "u1", submitter.payload.VirtualUnitID)
	assert.Equal(t, "pat@example.com", submitter.payload.CustomerEmail)

	// dates go out as absolute UTC timestamps
	start, err := time.Parse(time.RFC3339, submitter.payload.StartDate)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, start.Location())

	assert.Equal(t, 1, emitter.count(funnel.EventBookingCompleted))
	completed := emitter.events[len(emitter.events)-1]
	assert.Equal(t, "u1", completed.Metadata["unit_id"])
	assert.Equal(t, "b1", completed.Metadata["booking_id"])
}

func TestSubmitFailureAllowsRetry(t *testing.T) {
	submitter := &fakeSubmitter{err: assert.AnError}
	emitter := &recordingEmitter{}
	flow := NewFlow(submitter, emitter, nil)

	flow.Open(api.VirtualUnit{ID: "u1"})
	validDraft(flow.Form())

	_, err := flow.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, assert.AnError, flow.LastError())
	assert.Equal(t, 0, emitter.count(funnel.EventBookingCompleted))

	// the form stays editable and a retry can succeed
	submitter.err = nil
	submitter.booking = api.Booking{ID: "b2"}
	booked, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b2", booked.ID)
	assert.Equal(t, 2, submitter.calls)
	assert.Equal(t, 1, emitter.count(funnel.EventBookingCompleted))
}

func TestSubmitValidation(t *testing.T) {
	submitter := &fakeSubmitter{}
	flow := NewFlow(submitter, &recordingEmitter{}, nil)

	flow.Open(api.VirtualUnit{ID: "u1"})
	validDraft(flow.Form())
	flow.Form().CustomerEmail = "not-an-email"

	_, err := flow.Submit(context.Background())
	require.Error(t, err)
	assert.Zero(t, submitter.calls)

	flow.Form().CustomerEmail = "pat@example.com"
	flow.Form().PaymentOption = "cash_on_arrival"
	_, err = flow.Submit(context.Background())
	require.Error(t, err)
	assert.Zero(t, submitter.calls)
}

func TestSubmitWithoutOpenForm(t *testing.T) {
	flow := NewFlow(&fakeSubmitter{}, &recordingEmitter{}, nil)

	_, err := flow.Submit(context.Background())
	require.Error(t, err)
}

func TestCancelEmitsAbandonedOnce(t *testing.T) {
	emitter := &recordingEmitter{}
	flow := NewFlow(&fakeSubmitter{}, emitter, nil)

	flow.Open(api.VirtualUnit{ID: "u1"})
	flow.Cancel()
	assert.Equal(t, StateIdle, flow.State())
	assert.Equal(t, 1, emitter.count(funnel.EventBookingAbandoned))

	// a second cancel without reopening is a no-op
	flow.Cancel()
	assert.Equal(t, 1, emitter.count(funnel.EventBookingAbandoned))

	// reopening arms abandonment again
	flow.Open(api.VirtualUnit{ID: "u2"})
	flow.Cancel()
	assert.Equal(t, 2, emitter.count(funnel.EventBookingAbandoned))
}

func TestCancelAfterFailure(t *testing.T) {
	submitter := &fakeSubmitter{err: assert.AnError}
	emitter := &recordingEmitter{}
	flow := NewFlow(submitter, emitter, nil)

	flow.Open(api.VirtualUnit{ID: "u1"})
	validDraft(flow.Form())
	_, err := flow.Submit(context.Background())
	require.Error(t, err)

	flow.Cancel()
	assert.Equal(t, StateIdle, flow.State())
	assert.Equal(t, 1, emitter.count(funnel.EventBookingAbandoned))
}
