package funnel

import (
	"context"

	"storkeep-cli/api"
	"storkeep-cli/storage"
)

// CurrentBanner resolves the single banner to display: active banners
// for the session's stage, in the backend's order, minus anything the
// profile has dismissed. Returns nil when nothing qualifies.
func (t *Tracker) CurrentBanner(ctx context.Context) (*api.Banner, error) {
	stage, err := t.Stage(ctx)
	if err != nil {
		return nil, err
	}

	banners, err := t.backend.GetBanners(ctx, stage, true)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range banners {
		if t.session.IsDismissed(banners[i].ID) {
			continue
		}
		t.current = &banners[i]
		return t.current, nil
	}
	t.current = nil
	return nil, nil
}

// Dismiss persists a banner id into the dismissed set and clears the
// displayed banner; the id is never shown again for this profile. The
// funnel stage is re-fetched afterwards since the dismissed set feeds
// into what should display next.
func (t *Tracker) Dismiss(ctx context.Context, bannerID string) error {
	t.mu.Lock()
	added := t.session.Dismiss(bannerID)
	if t.current != nil && t.current.ID == bannerID {
		t.current = nil
	}
	session := *t.session
	t.mu.Unlock()

	if added {
		if err := storage.SaveSession(&session); err != nil {
			return err
		}
	}

	if _, err := t.Stage(ctx); err != nil {
		t.log.WithError(err).Debug("stage refresh after dismissal failed")
	}
	return nil
}
