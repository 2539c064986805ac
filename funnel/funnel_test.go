package funnel

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storkeep-cli/api"
	"storkeep-cli/storage"
)

type fakeBackend struct {
	mu       sync.Mutex
	events   []api.FunnelEvent
	trackErr error
	user     api.FunnelUser
	userErr  error
	banners  []api.Banner
}

func (b *fakeBackend) TrackEvent(_ context.Context, event api.FunnelEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.trackErr != nil {
		return b.trackErr
	}
	b.events = append(b.events, event)
	return nil
}

func (b *fakeBackend) GetFunnelUser(_ context.Context, _ string) (api.FunnelUser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.userErr != nil {
		return api.FunnelUser{}, b.userErr
	}
	return b.user, nil
}

func (b *fakeBackend) GetBanners(_ context.Context, _ string, _ bool) ([]api.Banner, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.banners, nil
}

func (b *fakeBackend) delivered() []api.FunnelEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]api.FunnelEvent, len(b.events))
	copy(out, b.events)
	return out
}

func TestTrackDeliversWithSessionID(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend, &storage.Session{ID: "s-123"})

	tracker.Track(EventPageView, nil)
	tracker.Track(EventUnitViewed, map[string]any{"unit_id": "u1"})
	tracker.Close()

	events := backend.delivered()
	require.Len(t, events, 2)
	assert.Equal(t, "s-123", events[0].SessionID)
	assert.Equal(t, EventPageView, events[0].EventType)
	assert.Equal(t, EventUnitViewed, events[1].EventType)
	assert.Equal(t, "u1", events[1].Metadata["unit_id"])
}

func TestTrackAfterCloseIsDropped(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend, &storage.Session{ID: "s-123"})
	tracker.Close()

	// must not panic or deliver
	tracker.Track(EventPageView, nil)
	assert.Empty(t, backend.delivered())
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	backend := &fakeBackend{trackErr: assert.AnError}
	tracker := NewTracker(backend, &storage.Session{ID: "s-123"})

	tracker.Track(EventPageView, nil)
	tracker.Close()

	assert.Empty(t, backend.delivered())
}

func TestStageFallsBackToVisitor(t *testing.T) {
	backend := &fakeBackend{userErr: &api.APIError{Status: http.StatusNotFound}}
	tracker := NewTracker(backend, &storage.Session{ID: "s-123"})
	defer tracker.Close()

	stage, err := tracker.Stage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StageVisitor, stage)

	backend.mu.Lock()
	backend.userErr = nil
	backend.user = api.FunnelUser{SessionID: "s-123", Stage: ""}
	backend.mu.Unlock()

	stage, err = tracker.Stage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StageVisitor, stage)

	backend.mu.Lock()
	backend.user.Stage = "browser"
	backend.mu.Unlock()

	stage, err = tracker.Stage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "browser", stage)
}

func TestCurrentBannerSkipsDismissed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	backend := &fakeBackend{
		user: api.FunnelUser{Stage: "browser"},
		banners: []api.Banner{
			{ID: "b1", Title: "First"},
			{ID: "b2", Title: "Second"},
		},
	}
	session := &storage.Session{ID: "s-123", DismissedBanners: []string{"b1"}}
	tracker := NewTracker(backend, session)
	defer tracker.Close()

	banner, err := tracker.CurrentBanner(context.Background())
	require.NoError(t, err)
	require.NotNil(t, banner)
	assert.Equal(t, "b2", banner.ID)
}

func TestDismissedBannerNeverReturns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	backend := &fakeBackend{
		user:    api.FunnelUser{Stage: "browser"},
		banners: []api.Banner{{ID: "b1", Title: "Only"}},
	}
	session := &storage.Session{ID: "s-123"}
	tracker := NewTracker(backend, session)
	defer tracker.Close()

	banner, err := tracker.CurrentBanner(context.Background())
	require.NoError(t, err)
	require.NotNil(t, banner)
	assert.Equal(t, "b1", banner.ID)

	require.NoError(t, tracker.Dismiss(context.Background(), "b1"))

	banner, err = tracker.CurrentBanner(context.Background())
	require.NoError(t, err)
	assert.Nil(t, banner)

	// the dismissal is persisted for the next run
	reloaded, err := storage.LoadOrCreateSession()
	require.NoError(t, err)
	assert.True(t, reloaded.IsDismissed("b1"))
}
