package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type PointsRequest struct {
	CustomerID  string `json:"customer_id"`
	Points      int    `json:"points"`
	Description string `json:"description,omitempty"`
}

func (c *Client) GetLoyaltyAccount(ctx context.Context, customerID string) (LoyaltyAccount, error) {
	path := "/loyalty/customer/" + url.PathEscape(customerID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return LoyaltyAccount{}, err
	}

	var account LoyaltyAccount
	if err := c.doJSON(req, &account); err != nil {
		return LoyaltyAccount{}, err
	}
	return account, nil
}

func (c *Client) AwardPoints(ctx context.Context, payload PointsRequest) (LoyaltyAccount, error) {
	return c.postPoints(ctx, "/loyalty/award-points", payload)
}

func (c *Client) RedeemPoints(ctx context.Context, payload PointsRequest) (LoyaltyAccount, error) {
	return c.postPoints(ctx, "/loyalty/redeem-points", payload)
}

func (c *Client) postPoints(ctx context.Context, path string, payload PointsRequest) (LoyaltyAccount, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return LoyaltyAccount{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(body))
	if err != nil {
		return LoyaltyAccount{}, err
	}

	var account LoyaltyAccount
	if err := c.doJSON(req, &account); err != nil {
		return LoyaltyAccount{}, err
	}
	return account, nil
}
