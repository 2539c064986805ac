package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type APIKeyRequest struct {
	Service     string `json:"service"`
	KeyName     string `json:"key_name"`
	KeyValue    string `json:"key_value"`
	Environment string `json:"environment"`
}

// GetAPIKeys lists stored keys; the backend returns masked values only.
func (c *Client) GetAPIKeys(ctx context.Context) ([]APIKey, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api-keys", nil, nil)
	if err != nil {
		return nil, err
	}

	var keys []APIKey
	if err := c.doJSON(req, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (c *Client) CreateAPIKey(ctx context.Context, payload APIKeyRequest) (APIKey, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return APIKey{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api-keys", nil, bytes.NewReader(body))
	if err != nil {
		return APIKey{}, err
	}

	var key APIKey
	if err := c.doJSON(req, &key); err != nil {
		return APIKey{}, err
	}
	return key, nil
}

func (c *Client) DeleteAPIKey(ctx context.Context, keyID string) error {
	path := "/api-keys/" + url.PathEscape(keyID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
