package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

type BannerRequest struct {
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	CTAText      string   `json:"cta_text,omitempty"`
	CTAURL       string   `json:"cta_url,omitempty"`
	FunnelStages []string `json:"funnel_stages"`
	Style        string   `json:"style,omitempty"`
	Active       bool     `json:"active"`
}

// GetBanners lists banners, optionally server-filtered to one funnel
// stage. The backend returns candidates in display order.
func (c *Client) GetBanners(ctx context.Context, funnelStage string, activeOnly bool) ([]Banner, error) {
	q := url.Values{}
	if funnelStage != "" {
		q.Set("funnel_stage", funnelStage)
	}
	q.Set("active_only", strconv.FormatBool(activeOnly))

	req, err := c.newRequest(ctx, http.MethodGet, "/banners", q, nil)
	if err != nil {
		return nil, err
	}

	var banners []Banner
	if err := c.doJSON(req, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (c *Client) CreateBanner(ctx context.Context, payload BannerRequest) (Banner, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Banner{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/banners", nil, bytes.NewReader(body))
	if err != nil {
		return Banner{}, err
	}

	var banner Banner
	if err := c.doJSON(req, &banner); err != nil {
		return Banner{}, err
	}
	return banner, nil
}

func (c *Client) UpdateBanner(ctx context.Context, bannerID string, payload BannerRequest) (Banner, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Banner{}, err
	}
	path := "/banners/" + url.PathEscape(bannerID)
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return Banner{}, err
	}

	var banner Banner
	if err := c.doJSON(req, &banner); err != nil {
		return Banner{}, err
	}
	return banner, nil
}

func (c *Client) DeleteBanner(ctx context.Context, bannerID string) error {
	path := "/banners/" + url.PathEscape(bannerID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
