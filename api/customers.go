package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type CustomerQuery struct {
	Search       string
	CustomerType string
	LoyaltyTier  string
}

type CustomerRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Company           string `json:"company,omitempty"`
	CustomerType      string `json:"customer_type"`
	AcquisitionSource string `json:"acquisition_source"`
}

func (c *Client) GetCustomers(ctx context.Context, query CustomerQuery) ([]Customer, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.CustomerType != "" {
		q.Set("customer_type", query.CustomerType)
	}
	if query.LoyaltyTier != "" {
		q.Set("loyalty_tier", query.LoyaltyTier)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/customers", q, nil)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := c.doJSON(req, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, payload CustomerRequest) (Customer, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Customer{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/customers", nil, bytes.NewReader(body))
	if err != nil {
		return Customer{}, err
	}

	var customer Customer
	if err := c.doJSON(req, &customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, payload CustomerRequest) (Customer, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Customer{}, err
	}
	path := "/customers/" + url.PathEscape(customerID)
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return Customer{}, err
	}

	var customer Customer
	if err := c.doJSON(req, &customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	path := "/customers/" + url.PathEscape(customerID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) GetCustomerBookings(ctx context.Context, customerID string) ([]Booking, error) {
	path := "/customers/" + url.PathEscape(customerID) + "/bookings"
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var bookings []Booking
	if err := c.doJSON(req, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
