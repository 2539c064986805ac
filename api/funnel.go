package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) TrackEvent(ctx context.Context, event FunnelEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/funnel/track", nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	return c.doStatus(req)
}

func (c *Client) GetFunnelUser(ctx context.Context, sessionID string) (FunnelUser, error) {
	path := "/funnel/user/" + url.PathEscape(sessionID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return FunnelUser{}, err
	}

	var user FunnelUser
	if err := c.doJSON(req, &user); err != nil {
		return FunnelUser{}, err
	}
	return user, nil
}
