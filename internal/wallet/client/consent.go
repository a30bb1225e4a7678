package client

import (
	"context"
	"net/http"
	"net/url"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
)

func (c *Client) GetContract(ctx context.Context, contractURI string) (models.ContractDetails, error) {
	var out models.ContractDetails
	err := c.call(ctx, http.MethodGet, "/consent-flow/contracts", "", url.Values{"uri": {contractURI}}, nil, &out)
	return out, err
}

func (c *Client) ConsentToContract(ctx context.Context, holderDID string, req wallet.ConsentRequest) (string, error) {
	var out struct {
		TermsURI string `json:"termsUri"`
	}
	if err := c.call(ctx, http.MethodPost, "/consent-flow/consents", holderDID, nil, req, &out); err != nil {
		return "", err
	}
	return out.TermsURI, nil
}

func (c *Client) UpdateTerms(ctx context.Context, holderDID string, req wallet.TermsUpdate) error {
	return c.call(ctx, http.MethodPut, "/consent-flow/terms", holderDID, nil, req, nil)
}

func (c *Client) WithdrawConsent(ctx context.Context, holderDID, termsURI string) error {
	body := map[string]string{"termsUri": termsURI}
	return c.call(ctx, http.MethodPost, "/consent-flow/terms/withdraw", holderDID, nil, body, nil)
}

func (c *Client) ConsentedContracts(ctx context.Context, holderDID string) ([]models.ConsentedContract, error) {
	var out []models.ConsentedContract
	err := c.call(ctx, http.MethodGet, "/consent-flow/consents", holderDID, nil, nil, &out)
	return out, err
}

func (c *Client) SyncCredentialsToContract(ctx context.Context, holderDID, termsURI string, categories map[string][]string) error {
	body := struct {
		TermsURI   string              `json:"termsUri"`
		Categories map[string][]string `json:"categories"`
	}{termsURI, categories}
	return c.call(ctx, http.MethodPost, "/consent-flow/terms/sync", holderDID, nil, body, nil)
}

func (c *Client) CredentialsFromContract(ctx context.Context, holderDID, contractURI string) ([]wallet.CredentialRecord, error) {
	var out []wallet.CredentialRecord
	err := c.call(ctx, http.MethodGet, "/consent-flow/credentials", holderDID, url.Values{"contractUri": {contractURI}}, nil, &out)
	return out, err
}

func (c *Client) DeleteCredentialRecord(ctx context.Context, holderDID, recordID string) error {
	return c.call(ctx, http.MethodDelete, "/index/records/"+url.PathEscape(recordID), holderDID, nil, nil, nil)
}
