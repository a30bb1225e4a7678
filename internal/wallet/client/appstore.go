package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"walletgate/internal/wallet"
)

func listingPath(id string) string {
	return "/app-store/listings/" + url.PathEscape(id)
}

func listingQuery(q wallet.ListingQuery) url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

func (c *Client) CreateListing(ctx context.Context, ownerDID, integrationID string, in wallet.ListingInput) (wallet.Listing, error) {
	var out wallet.Listing
	err := c.call(ctx, http.MethodPost, "/app-store/listings", ownerDID, url.Values{"integrationId": {integrationID}}, in, &out)
	return out, err
}

func (c *Client) UpdateListing(ctx context.Context, ownerDID, listingID string, in wallet.ListingUpdate) (wallet.Listing, error) {
	var out wallet.Listing
	err := c.call(ctx, http.MethodPatch, listingPath(listingID), ownerDID, nil, in, &out)
	return out, err
}

func (c *Client) DeleteListing(ctx context.Context, ownerDID, listingID string) error {
	return c.call(ctx, http.MethodDelete, listingPath(listingID), ownerDID, nil, nil, nil)
}

func (c *Client) GetListing(ctx context.Context, listingID string) (wallet.Listing, error) {
	var out wallet.Listing
	err := c.call(ctx, http.MethodGet, listingPath(listingID), "", nil, nil, &out)
	return out, err
}

func (c *Client) ListListings(ctx context.Context, q wallet.ListingQuery) (wallet.ListingPage, error) {
	var out wallet.ListingPage
	err := c.call(ctx, http.MethodGet, "/app-store/listings", "", listingQuery(q), nil, &out)
	return out, err
}

func (c *Client) SetListingStatus(ctx context.Context, listingID string, status wallet.ListingStatus) (wallet.Listing, error) {
	var out wallet.Listing
	body := map[string]wallet.ListingStatus{"status": status}
	err := c.call(ctx, http.MethodPut, listingPath(listingID)+"/status", "", nil, body, &out)
	return out, err
}

func (c *Client) SetPromotionLevel(ctx context.Context, listingID string, level wallet.PromotionLevel) (wallet.Listing, error) {
	var out wallet.Listing
	body := map[string]wallet.PromotionLevel{"promotionLevel": level}
	err := c.call(ctx, http.MethodPut, listingPath(listingID)+"/promotion", "", nil, body, &out)
	return out, err
}

func (c *Client) InstallApp(ctx context.Context, holderDID, listingID string) error {
	return c.call(ctx, http.MethodPost, "/app-store/installs/"+url.PathEscape(listingID), holderDID, nil, nil, nil)
}

func (c *Client) UninstallApp(ctx context.Context, holderDID, listingID string) error {
	return c.call(ctx, http.MethodDelete, "/app-store/installs/"+url.PathEscape(listingID), holderDID, nil, nil, nil)
}

func (c *Client) InstalledApps(ctx context.Context, holderDID string, q wallet.ListingQuery) (wallet.InstalledPage, error) {
	var out wallet.InstalledPage
	err := c.call(ctx, http.MethodGet, "/app-store/installs", holderDID, listingQuery(q), nil, &out)
	return out, err
}

var (
	_ wallet.ConsentNetwork  = (*Client)(nil)
	_ wallet.CredentialIndex = (*Client)(nil)
	_ wallet.AppStore        = (*Client)(nil)
)
