package api

import (
	"context"
	"net/http"
)

// InitializeSampleData asks the backend to seed itself with demo units,
// customers, and content. Safe to repeat; the backend skips seeding
// when data already exists.
func (c *Client) InitializeSampleData(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/initialize-sample-data", nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
