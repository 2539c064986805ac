package api

import (
	"context"
	"net/http"
)

func (c *Client) GetIntegrationStatus(ctx context.Context) (IntegrationStatus, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/integration-status", nil, nil)
	if err != nil {
		return nil, err
	}

	var status IntegrationStatus
	if err := c.doJSON(req, &status); err != nil {
		return nil, err
	}
	return status, nil
}
