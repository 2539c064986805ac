package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

type ImageRequest struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}

func (c *Client) GetImages(ctx context.Context, category string, tags []string) ([]ImageAsset, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if len(tags) > 0 {
		q.Set("tags", strings.Join(tags, ","))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/images", q, nil)
	if err != nil {
		return nil, err
	}

	var images []ImageAsset
	if err := c.doJSON(req, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) CreateImage(ctx context.Context, payload ImageRequest) (ImageAsset, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ImageAsset{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/images", nil, bytes.NewReader(body))
	if err != nil {
		return ImageAsset{}, err
	}

	var image ImageAsset
	if err := c.doJSON(req, &image); err != nil {
		return ImageAsset{}, err
	}
	return image, nil
}

func (c *Client) UpdateImage(ctx context.Context, imageID string, payload ImageRequest) (ImageAsset, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ImageAsset{}, err
	}
	path := "/images/" + url.PathEscape(imageID)
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return ImageAsset{}, err
	}

	var image ImageAsset
	if err := c.doJSON(req, &image); err != nil {
		return ImageAsset{}, err
	}
	return image, nil
}

func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	path := "/images/" + url.PathEscape(imageID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
