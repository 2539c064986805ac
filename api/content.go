package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type ContentRequest struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}

func (c *Client) GetContent(ctx context.Context) ([]ContentBlock, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/content", nil, nil)
	if err != nil {
		return nil, err
	}

	var blocks []ContentBlock
	if err := c.doJSON(req, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *Client) CreateContent(ctx context.Context, payload ContentRequest) (ContentBlock, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ContentBlock{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/content", nil, bytes.NewReader(body))
	if err != nil {
		return ContentBlock{}, err
	}

	var block ContentBlock
	if err := c.doJSON(req, &block); err != nil {
		return ContentBlock{}, err
	}
	return block, nil
}

func (c *Client) UpdateContent(ctx context.Context, contentID string, payload ContentRequest) (ContentBlock, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ContentBlock{}, err
	}
	path := "/content/" + url.PathEscape(contentID)
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, bytes.NewReader(body))
	if err != nil {
		return ContentBlock{}, err
	}

	var block ContentBlock
	if err := c.doJSON(req, &block); err != nil {
		return ContentBlock{}, err
	}
	return block, nil
}

func (c *Client) DeleteContent(ctx context.Context, contentID string) error {
	path := "/content/" + url.PathEscape(contentID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
