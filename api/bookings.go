package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) CreateBooking(ctx context.Context, payload BookingRequest) (Booking, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Booking{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/bookings", nil, bytes.NewReader(body))
	if err != nil {
		return Booking{}, err
	}

	var booking Booking
	if err := c.doJSON(req, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

func (c *Client) GetBookings(ctx context.Context) ([]Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/bookings", nil, nil)
	if err != nil {
		return nil, err
	}

	var bookings []Booking
	if err := c.doJSON(req, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (Booking, error) {
	path := "/bookings/" + url.PathEscape(bookingID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return Booking{}, err
	}

	var booking Booking
	if err := c.doJSON(req, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}
