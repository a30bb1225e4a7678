// Package client is the JSON-over-HTTP adapter for the wallet network service.
//
// Every call carries the API key in X-API-Key and, for holder-scoped calls, the acting
// holder DID in X-Holder-DID. Error statuses map to sentinel errors:
// 400/422 invalid input, 401/403 forbidden, 404 not found, 409 conflict,
// 502/503/504 unavailable. An optional circuit breaker fails calls fast while the
// network keeps returning transport errors or 5xx gateway statuses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"walletgate/internal/sentinel"
	"walletgate/pkg/platform/circuit"
)

const (
	headerAPIKey    = "X-API-Key"
	headerHolderDID = "X-Holder-DID"
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 4 << 10
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks HTTPDoer

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient HTTPDoer
	Breaker    *circuit.Breaker
}

// Client implements wallet.ConsentNetwork, wallet.CredentialIndex, and wallet.AppStore
// against the network service.
type Client struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
	breaker *circuit.Breaker
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  selectHTTPClient(cfg),
		breaker: cfg.Breaker,
	}
}

func selectHTTPClient(cfg Config) HTTPDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// call sends one request. body and out may be nil.
func (c *Client) call(ctx context.Context, method, path, holderDID string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	if holderDID != "" {
		req.Header.Set(headerHolderDID, holderDID)
	}

	if c.breaker != nil && !c.breaker.Allow() {
		return fmt.Errorf("%s %s: %w: circuit %s open", method, path, sentinel.ErrUnavailable, c.breaker.Name())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		c.record(false)
		return fmt.Errorf("%s %s: %w: %v", method, path, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.record(!isGatewayFailure(resp.StatusCode))

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(method, path, resp.StatusCode, detail)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) record(ok bool) {
	if c.breaker == nil {
		return
	}
	if ok {
		c.breaker.RecordSuccess()
		return
	}
	c.breaker.RecordFailure()
}

func isGatewayFailure(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func statusError(method, path string, status int, body []byte) error {
	var kind error
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = sentinel.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = sentinel.ErrForbidden
	case http.StatusNotFound:
		kind = sentinel.ErrNotFound
	case http.StatusConflict:
		kind = sentinel.ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		kind = sentinel.ErrUnavailable
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, status, strings.TrimSpace(string(body)))
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return fmt.Errorf("%s %s: %w: %s", method, path, kind, msg)
	}
	return fmt.Errorf("%s %s: %w", method, path, kind)
}
