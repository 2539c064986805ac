package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL + "/api"
	return client
}

func TestGetVirtualUnitsPassesQuery(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"u1","display_name":"Unit 1","monthly_price":99}]`))
	})

	q := url.Values{}
	q.Set("unit_type", "storage")
	q.Set("amenities", "climate_controlled,drive_up")
	units, err := client.GetVirtualUnits(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, "/api/virtual-units", gotPath)
	assert.Equal(t, "storage", gotQuery.Get("unit_type"))
	assert.Equal(t, "climate_controlled,drive_up", gotQuery.Get("amenities"))
	require.Len(t, units, 1)
	assert.Equal(t, "u1", units[0].ID)
	assert.Equal(t, 99.0, units[0].MonthlyPrice)
}

func TestErrorDetailSurfaced(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Unit not available"}`))
	})

	_, err := client.GetVirtualUnit(context.Background(), "u1")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Unit not available", apiErr.Error())
}

func TestErrorWithoutDetailBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream exploded`))
	})

	_, err := client.GetBookings(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Funnel user not found"}`))
	})

	_, err := client.GetFunnelUser(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, NotFound(err))
	assert.False(t, NotFound(assert.AnError))
}

func TestGetBannersQuery(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := client.GetBanners(context.Background(), "browser", true)
	require.NoError(t, err)
	assert.Equal(t, "browser", gotQuery.Get("funnel_stage"))
	assert.Equal(t, "true", gotQuery.Get("active_only"))

	_, err = client.GetBanners(context.Background(), "", false)
	require.NoError(t, err)
	assert.False(t, gotQuery.Has("funnel_stage"))
	assert.Equal(t, "false", gotQuery.Get("active_only"))
}

func TestGetFilterOptions(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/filter-options", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"unit_types": ["self_storage", "enclosed_parking"],
			"amenities": ["climate_controlled"],
			"size_categories": ["small", "medium", "large"],
			"pricing_periods": ["daily", "weekly", "monthly"],
			"payment_options": ["pay_now_move_now"],
			"price_range": {"min": 25, "max": 450}
		}`))
	})

	options, err := client.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"self_storage", "enclosed_parking"}, options.UnitTypes)
	assert.Equal(t, []string{"small", "medium", "large"}, options.SizeCategories)
	assert.Equal(t, 25.0, options.PriceRange.Min)
	assert.Equal(t, 450.0, options.PriceRange.Max)
}

func TestUpdateImage(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"img1","name":"Hero shot","category":"hero"}`))
	})

	image, err := client.UpdateImage(context.Background(), "img1", ImageRequest{
		Name: "Hero shot",
		URL:  "https://cdn.example.com/hero.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/images/img1", gotPath)
	assert.Equal(t, "img1", image.ID)
}

func TestInitializeSampleData(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":"Sample data initialized"}`))
	})

	require.NoError(t, client.InitializeSampleData(context.Background()))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/initialize-sample-data", gotPath)
}

func TestCreateBookingSendsPayload(t *testing.T) {
	var gotMethod string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"b1","virtual_unit_id":"u1","status":"confirmed","total_price":120}`))
	})

	booked, err := client.CreateBooking(context.Background(), BookingRequest{
		VirtualUnitID: "u1",
		CustomerName:  "Pat Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "b1", booked.ID)
	assert.Equal(t, "confirmed", booked.Status)
}
