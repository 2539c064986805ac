// Package filter holds the active unit filter set and keeps the unit
// list in sync with it. The backend owns matching semantics; every
// change round-trips through the unit lister.
package filter

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"storkeep-cli/api"
)

const (
	KeyUnitType      = "unit_type"
	KeySizeCategory  = "size_category"
	KeyPricingPeriod = "pricing_period"
	KeyMinPrice      = "min_price"
	KeyMaxPrice      = "max_price"
	KeyAmenities     = "amenities"
)

type Lister interface {
	GetVirtualUnits(ctx context.Context, query url.Values) ([]api.VirtualUnit, error)
}

type Manager struct {
	lister Lister

	mu     sync.Mutex
	values map[string]any
	units  []api.VirtualUnit
	gen    uint64
}

func NewManager(lister Lister) *Manager {
	return &Manager{
		lister: lister,
		values: map[string]any{
			KeyPricingPeriod: api.PeriodMonthly,
		},
	}
}

// Set replaces one filter value and refetches the unit list. A nil
// value, empty string, or empty slice clears the key.
func (m *Manager) Set(ctx context.Context, key string, value any) error {
	m.mu.Lock()
	m.setLocked(key, value)
	m.mu.Unlock()
	return m.Refresh(ctx)
}

// SetValues applies several filter values in one step with a single
// refetch.
func (m *Manager) SetValues(ctx context.Context, values map[string]any) error {
	m.mu.Lock()
	for key, value := range values {
		m.setLocked(key, value)
	}
	m.mu.Unlock()
	return m.Refresh(ctx)
}

func (m *Manager) setLocked(key string, value any) {
	if isEmpty(value) {
		delete(m.values, key)
		return
	}
	m.values[key] = value
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

// Query builds the outgoing query string. Cleared keys are omitted and
// the amenities set collapses to a single comma-joined value.
func (m *Manager) Query() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryLocked()
}

func (m *Manager) queryLocked() url.Values {
	q := url.Values{}
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		q.Set(key, encodeValue(m.values[key]))
	}
	return q
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Refresh refetches units for the current filter set. Each refetch is
// stamped with a generation; a response that arrives after a newer
// change has been made is dropped rather than overwriting the list.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	query := m.queryLocked()
	m.mu.Unlock()

	units, err := m.lister.GetVirtualUnits(ctx, query)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if gen == m.gen {
		m.units = units
	}
	m.mu.Unlock()
	return nil
}

func (m *Manager) Units() []api.VirtualUnit {
	m.mu.Lock()
	defer m.mu.Unlock()
	units := make([]api.VirtualUnit, len(m.units))
	copy(units, m.units)
	return units
}

// Period returns the active pricing period, monthly when unset.
func (m *Manager) Period() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if period, ok := m.values[KeyPricingPeriod].(string); ok {
		return period
	}
	return api.PeriodMonthly
}

// Active reports whether any filter beyond the default pricing period
// is set.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.values {
		if key != KeyPricingPeriod {
			return true
		}
	}
	return false
}
