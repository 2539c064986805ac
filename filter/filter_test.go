package filter

import (
	"context"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storkeep-cli/api"
)

type fakeLister struct {
	mu      sync.Mutex
	queries []url.Values
	respond func(call int, query url.Values) ([]api.VirtualUnit, error)
}

func (f *fakeLister) GetVirtualUnits(_ context.Context, query url.Values) ([]api.VirtualUnit, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	call := len(f.queries)
	f.mu.Unlock()
	if f.respond != nil {
		return f.respond(call, query)
	}
	return nil, nil
}

func (f *fakeLister) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func TestDefaultPeriodIsMonthly(t *testing.T) {
	lister := &fakeLister{}
	m := NewManager(lister)

	assert.Equal(t, api.PeriodMonthly, m.Period())
	assert.False(t, m.Active())

	require.NoError(t, m.Refresh(context.Background()))
	assert.Equal(t, api.PeriodMonthly, lister.lastQuery().Get(KeyPricingPeriod))
}

func TestSetAndClear(t *testing.T) {
	lister := &fakeLister{}
	m := NewManager(lister)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyUnitType, "storage"))
	assert.Equal(t, "storage", lister.lastQuery().Get(KeyUnitType))
	assert.True(t, m.Active())

	// empty string clears the key entirely, nil does the same
	require.NoError(t, m.Set(ctx, KeyUnitType, ""))
	assert.False(t, lister.lastQuery().Has(KeyUnitType))
	assert.False(t, m.Active())

	require.NoError(t, m.Set(ctx, KeyMinPrice, 50.0))
	require.NoError(t, m.Set(ctx, KeyMinPrice, nil))
	assert.False(t, lister.lastQuery().Has(KeyMinPrice))
}

func TestAmenitiesCommaJoined(t *testing.T) {
	lister := &fakeLister{}
	m := NewManager(lister)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeyAmenities, []string{"climate_controlled", "drive_up"}))
	assert.Equal(t, "climate_controlled,drive_up", lister.lastQuery().Get(KeyAmenities))

	require.NoError(t, m.Set(ctx, KeyAmenities, []string{}))
	assert.False(t, lister.lastQuery().Has(KeyAmenities))
}

func TestSetValuesSingleFetch(t *testing.T) {
	lister := &fakeLister{}
	m := NewManager(lister)

	require.NoError(t, m.SetValues(context.Background(), map[string]any{
		KeyUnitType:     "parking",
		KeySizeCategory: "large",
		KeyMaxPrice:     300.0,
	}))

	require.Len(t, lister.queries, 1)
	q := lister.lastQuery()
	assert.Equal(t, "parking", q.Get(KeyUnitType))
	assert.Equal(t, "large", q.Get(KeySizeCategory))
	assert.Equal(t, "300", q.Get(KeyMaxPrice))
}

func TestStaleResponseDropped(t *testing.T) {
	unitA := api.VirtualUnit{ID: "a"}
	unitB := api.VirtualUnit{ID: "b"}

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	lister := &fakeLister{}
	lister.respond = func(call int, _ url.Values) ([]api.VirtualUnit, error) {
		if call == 1 {
			close(firstStarted)
			<-release
			return []api.VirtualUnit{unitA}, nil
		}
		return []api.VirtualUnit{unitB}, nil
	}

	m := NewManager(lister)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, m.Refresh(ctx))
	}()

	<-firstStarted
	// a newer filter change lands while the first fetch is in flight
	require.NoError(t, m.Set(ctx, KeyUnitType, "storage"))
	close(release)
	wg.Wait()

	units := m.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "b", units[0].ID)
}
