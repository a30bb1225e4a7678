package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"walletgate/internal/wallet"
)

func (c *Client) ByCategory(ctx context.Context, holderDID, category string, limit int) ([]wallet.CredentialRecord, error) {
	q := url.Values{"category": {category}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []wallet.CredentialRecord
	err := c.call(ctx, http.MethodGet, "/index/records", holderDID, q, nil, &out)
	return out, err
}

func (c *Client) Page(ctx context.Context, holderDID, cursor string, limit int) (wallet.IndexPage, error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out wallet.IndexPage
	err := c.call(ctx, http.MethodGet, "/index/page", holderDID, q, nil, &out)
	return out, err
}

func (c *Client) ShareWithOwner(ctx context.Context, holderDID, ownerDID, uri, category string) (string, error) {
	body := struct {
		OwnerDID string `json:"ownerDid"`
		URI      string `json:"uri"`
		Category string `json:"category"`
	}{ownerDID, uri, category}
	var out struct {
		URI string `json:"uri"`
	}
	if err := c.call(ctx, http.MethodPost, "/index/shares", holderDID, nil, body, &out); err != nil {
		return "", err
	}
	return out.URI, nil
}
