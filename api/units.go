package api

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
)

func (c *Client) GetVirtualUnits(ctx context.Context, query url.Values) ([]VirtualUnit, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/virtual-units", query, nil)
	if err != nil {
		return nil, err
	}

	var units []VirtualUnit
	if err := c.doJSON(req, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *Client) GetVirtualUnit(ctx context.Context, unitID string) (VirtualUnit, error) {
	path := "/virtual-units/" + url.PathEscape(unitID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return VirtualUnit{}, err
	}

	var unit VirtualUnit
	if err := c.doJSON(req, &unit); err != nil {
		return VirtualUnit{}, err
	}
	return unit, nil
}

func (c *Client) GetFilterOptions(ctx context.Context) (FilterOptions, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/filter-options", nil, nil)
	if err != nil {
		return FilterOptions{}, err
	}

	var options FilterOptions
	if err := c.doJSON(req, &options); err != nil {
		return FilterOptions{}, err
	}
	return options, nil
}

func (c *Client) SetUnitImage(ctx context.Context, unitID, imageURL string) error {
	q := url.Values{}
	q.Set("image_url", imageURL)
	path := "/virtual-units/" + url.PathEscape(unitID) + "/image"
	req, err := c.newRequest(ctx, http.MethodPut, path, q, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

// PriceForPeriod returns the unit price for a pricing period tag. Any
// unrecognized tag falls back to the monthly price.
func (u VirtualUnit) PriceForPeriod(period string) float64 {
	switch period {
	case PeriodDaily:
		return u.DailyPrice
	case PeriodWeekly:
		return u.WeeklyPrice
	default:
		return u.MonthlyPrice
	}
}

func PeriodLabel(period string) string {
	switch period {
	case PeriodDaily:
		return "/day"
	case PeriodWeekly:
		return "/week"
	default:
		return "/month"
	}
}

var sizeDigits = regexp.MustCompile(`\d+`)

// SizeCategory buckets a free-text display size ("10x20", "12 x 30 ft")
// by the product of the first two numbers found in it. Best effort: the
// numbers are not required to be a width/depth pair, and anything that
// doesn't yield two numbers lands in "medium".
func SizeCategory(displaySize string) string {
	numbers := sizeDigits.FindAllString(displaySize, 2)
	if len(numbers) < 2 {
		return "medium"
	}
	width, err := strconv.Atoi(numbers[0])
	if err != nil {
		return "medium"
	}
	depth, err := strconv.Atoi(numbers[1])
	if err != nil {
		return "medium"
	}
	area := width * depth
	switch {
	case area <= 200:
		return "small"
	case area <= 400:
		return "medium"
	default:
		return "large"
	}
}
