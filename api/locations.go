package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type LocationRequest struct {
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	ZipCode          string            `json:"zip_code"`
	Phone            string            `json:"phone,omitempty"`
	Email            string            `json:"email,omitempty"`
	ManagerName      string            `json:"manager_name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Amenities        []string          `json:"amenities"`
	HoursOfOperation map[string]string `json:"hours_of_operation,omitempty"`
}

func (c *Client) GetLocations(ctx context.Context) ([]Location, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/locations", nil, nil)
	if err != nil {
		return nil, err
	}

	var locations []Location
	if err := c.doJSON(req, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) CreateLocation(ctx context.Context, payload LocationRequest) (Location, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Location{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/locations", nil, bytes.NewReader(body))
	if err != nil {
		return Location{}, err
	}

	var location Location
	if err := c.doJSON(req, &location); err != nil {
		return Location{}, err
	}
	return location, nil
}

func (c *Client) UpdateLocation(ctx context.Context, locationID string, payload LocationRequest) (Location, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Location{}, err
	}
	path := "/locations/" + url.PathEscape(locationID)
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return Location{}, err
	}

	var location Location
	if err := c.doJSON(req, &location); err != nil {
		return Location{}, err
	}
	return location, nil
}

func (c *Client) DeleteLocation(ctx context.Context, locationID string) error {
	path := "/locations/" + url.PathEscape(locationID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
