package storage

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	db, err := OpenHistoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistoryDedupe(t *testing.T) {
	db := openTestDB(t)

	record := BookingRecord{
		ID:            "b1",
		UnitID:        "u1",
		UnitName:      "Unit 10x10",
		PricingPeriod: "monthly",
		StartDate:     "2026-01-01T00:00:00Z",
		Price:         120,
	}

	added, err := AddRecordIfNotExists(db, record)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = AddRecordIfNotExists(db, record)
	require.NoError(t, err)
	assert.False(t, added)

	records, err := ListRecords(db, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0].ID)
	assert.Equal(t, 120.0, records[0].Price)
}

func TestHistoryDateRange(t *testing.T) {
	db := openTestDB(t)

	for _, record := range []BookingRecord{
		{ID: "b1", StartDate: "2026-01-10T00:00:00Z"},
		{ID: "b2", StartDate: "2026-02-10T00:00:00Z"},
		{ID: "b3", StartDate: "2026-03-10T00:00:00Z"},
	} {
		_, err := AddRecordIfNotExists(db, record)
		require.NoError(t, err)
	}

	records, err := ListRecords(db, HistoryFilter{From: "2026-02-01", To: "2026-02-28"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b2", records[0].ID)

	records, err = ListRecords(db, HistoryFilter{From: "2026-02-01"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b2", records[0].ID)
	assert.Equal(t, "b3", records[1].ID)
}

func TestHistoryRemove(t *testing.T) {
	db := openTestDB(t)

	_, err := AddRecordIfNotExists(db, BookingRecord{ID: "b1", StartDate: "2026-01-01T00:00:00Z"})
	require.NoError(t, err)

	removed, err := RemoveRecord(db, "b1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveRecord(db, "b1")
	require.NoError(t, err)
	assert.False(t, removed)

	records, err := ListRecords(db, HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
