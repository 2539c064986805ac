package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDStableAcrossLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	first, err := LoadOrCreateSession()
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := LoadOrCreateSession()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestClearSessionRotatesID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	first, err := LoadOrCreateSession()
	require.NoError(t, err)

	require.NoError(t, ClearSession())
	// clearing twice is fine
	require.NoError(t, ClearSession())

	second, err := LoadOrCreateSession()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDismissIdempotent(t *testing.T) {
	session := &Session{ID: "s-123"}

	assert.True(t, session.Dismiss("b1"))
	assert.False(t, session.Dismiss("b1"))
	assert.True(t, session.IsDismissed("b1"))
	assert.False(t, session.IsDismissed("b2"))
	assert.Len(t, session.DismissedBanners, 1)
}

func TestDismissedSetPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	session, err := LoadOrCreateSession()
	require.NoError(t, err)
	session.Dismiss("b1")
	session.Dismiss("b2")
	require.NoError(t, SaveSession(session))

	reloaded, err := LoadOrCreateSession()
	require.NoError(t, err)
	assert.Equal(t, session.ID, reloaded.ID)
	assert.True(t, reloaded.IsDismissed("b1"))
	assert.True(t, reloaded.IsDismissed("b2"))
}
