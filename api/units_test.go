package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForPeriod(t *testing.T) {
	unit := VirtualUnit{DailyPrice: 12, WeeklyPrice: 60, MonthlyPrice: 180}

	assert.Equal(t, 12.0, unit.PriceForPeriod(PeriodDaily))
	assert.Equal(t, 60.0, unit.PriceForPeriod(PeriodWeekly))
	assert.Equal(t, 180.0, unit.PriceForPeriod(PeriodMonthly))

	// unknown periods fall back to monthly
	assert.Equal(t, 180.0, unit.PriceForPeriod("yearly"))
	assert.Equal(t, 180.0, unit.PriceForPeriod(""))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "/day", PeriodLabel(PeriodDaily))
	assert.Equal(t, "/week", PeriodLabel(PeriodWeekly))
	assert.Equal(t, "/month", PeriodLabel(PeriodMonthly))
	assert.Equal(t, "/month", PeriodLabel("fortnightly"))
}

func TestSizeCategory(t *testing.T) {
	tests := []struct {
		displaySize string
		want        string
	}{
		{"5x5", "small"},          // 25
		{"10x20", "small"},        // 200 sits on the small boundary
		{"10' x 20' Unit", "small"}, // only the first two numbers count
		{"201x1", "medium"},       // 201 just over the small cutoff
		{"20x20", "medium"},       // 400 sits on the medium boundary
		{"401x1", "large"},        // 401 just over the medium cutoff
		{"20x25", "large"},
		{"large unit", "medium"}, // no dimensions, default bucket
		{"10 feet", "medium"},    // one number is not enough
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeCategory(tt.displaySize), "display size %q", tt.displaySize)
	}
}
