// Package funnel tracks behavioral events against a persisted session
// identifier and selects targeted banners for the session's funnel
// stage. Event delivery is best effort: failures are logged and
// dropped, never surfaced.
package funnel

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"storkeep-cli/api"
	"storkeep-cli/storage"
)

const (
	EventPageView         = "page_view"
	EventUnitViewed       = "unit_viewed"
	EventFilterUsed       = "filter_used"
	EventBookingStarted   = "booking_started"
	EventBookingAbandoned = "booking_abandoned"
	EventBookingCompleted = "booking_completed"
	EventBannerClicked    = "banner_clicked"
)

// StageVisitor is what a session with no recorded events resolves to.
const StageVisitor = "visitor"

const (
	eventBuffer  = 64
	eventTimeout = 5 * time.Second
)

type Backend interface {
	TrackEvent(ctx context.Context, event api.FunnelEvent) error
	GetFunnelUser(ctx context.Context, sessionID string) (api.FunnelUser, error)
	GetBanners(ctx context.Context, funnelStage string, activeOnly bool) ([]api.Banner, error)
}

type Tracker struct {
	backend Backend
	log     *logrus.Logger

	mu      sync.Mutex
	session *storage.Session
	current *api.Banner
	closed  bool

	events chan api.FunnelEvent
	done   chan struct{}
}

func NewTracker(backend Backend, session *storage.Session) *Tracker {
	t := &Tracker{
		backend: backend,
		log:     logrus.StandardLogger(),
		session: session,
		events:  make(chan api.FunnelEvent, eventBuffer),
		done:    make(chan struct{}),
	}
	go t.deliver()
	return t
}

func (t *Tracker) SessionID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.ID
}

// Track enqueues an event without blocking. Events are dropped when the
// buffer is full or the tracker is closed.
func (t *Tracker) Track(eventType string, metadata map[string]any) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		t.log.WithField("event", eventType).Debug("tracker closed, dropping event")
		return
	}
	event := api.FunnelEvent{
		SessionID: t.session.ID,
		EventType: eventType,
		Metadata:  metadata,
	}
	select {
	case t.events <- event:
	default:
		t.log.WithField("event", eventType).Warn("event buffer full, dropping event")
	}
	t.mu.Unlock()
}

func (t *Tracker) deliver() {
	defer close(t.done)
	for event := range t.events {
		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		err := t.backend.TrackEvent(ctx, event)
		cancel()
		if err != nil {
			t.log.WithError(err).WithField("event", event.EventType).Warn("event delivery failed")
		}
	}
}

// Close flushes queued events and stops the delivery worker.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		<-t.done
		return
	}
	t.closed = true
	close(t.events)
	t.mu.Unlock()
	<-t.done
}

// Stage fetches the session's funnel stage. A session the backend has
// never seen is a visitor.
func (t *Tracker) Stage(ctx context.Context) (string, error) {
	user, err := t.backend.GetFunnelUser(ctx, t.SessionID())
	if err != nil {
		if api.NotFound(err) {
			return StageVisitor, nil
		}
		return "", err
	}
	if user.Stage == "" {
		return StageVisitor, nil
	}
	return user.Stage, nil
}
