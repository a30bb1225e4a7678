// Package wallet declares the ports the consent-flow and app-store services use to
// reach the wallet network and the holder's credential index.
//
// Two implementations live in sub-packages: client (JSON over HTTP) and memory
// (in-process, used by tests and offline development).
package wallet

import (
	"context"

	"walletgate/internal/consentflow/models"
)

//go:generate mockgen -source=wallet.go -destination=mocks/wallet_mock.go -package=mocks ConsentNetwork,CredentialIndex
//go:generate mockgen -source=appstore.go -destination=mocks/appstore_mock.go -package=mocks AppStore

// CredentialRecord is one entry in the holder's credential index.
type CredentialRecord struct {
	ID          string `json:"id"`
	URI         string `json:"uri"`
	Category    string `json:"category"`
	ContractURI string `json:"contractUri,omitempty"`
	// SharedURIs maps a recipient DID to the shared copies of this credential.
	SharedURIs map[string][]string `json:"sharedUris,omitempty"`
}

// IndexPage is one page of the credential index.
type IndexPage struct {
	Records []CredentialRecord `json:"records"`
	HasMore bool               `json:"hasMore"`
	Cursor  string             `json:"cursor,omitempty"`
}

// ConsentRequest carries a first-time consent to a contract.
type ConsentRequest struct {
	ContractURI string       `json:"contractUri"`
	Terms       models.Terms `json:"terms"`
	ExpiresAt   string       `json:"expiresAt,omitempty"`
	OneTime     bool         `json:"oneTime,omitempty"`
}

// TermsUpdate replaces previously consented terms.
type TermsUpdate struct {
	TermsURI  string       `json:"termsUri"`
	Terms     models.Terms `json:"terms"`
	ExpiresAt string       `json:"expiresAt,omitempty"`
	OneTime   bool         `json:"oneTime,omitempty"`
}

// ConsentNetwork is the consent-flow surface of the wallet network.
// Every call acts on behalf of holderDID.
//
// Implementations return sentinel.ErrConflict when the holder already consented to a
// contract, and sentinel.ErrNotFound for unknown contracts, terms, or records.
type ConsentNetwork interface {
	GetContract(ctx context.Context, contractURI string) (models.ContractDetails, error)
	ConsentToContract(ctx context.Context, holderDID string, req ConsentRequest) (string, error)
	UpdateTerms(ctx context.Context, holderDID string, req TermsUpdate) error
	WithdrawConsent(ctx context.Context, holderDID, termsURI string) error
	ConsentedContracts(ctx context.Context, holderDID string) ([]models.ConsentedContract, error)
	SyncCredentialsToContract(ctx context.Context, holderDID, termsURI string, categories map[string][]string) error
	CredentialsFromContract(ctx context.Context, holderDID, contractURI string) ([]CredentialRecord, error)
	DeleteCredentialRecord(ctx context.Context, holderDID, recordID string) error
}

// CredentialIndex is the holder's credential index.
type CredentialIndex interface {
	// ByCategory returns at most limit records of one category. It does not paginate.
	ByCategory(ctx context.Context, holderDID, category string, limit int) ([]CredentialRecord, error)
	// Page walks the whole index. An empty cursor starts from the beginning.
	Page(ctx context.Context, holderDID, cursor string, limit int) (IndexPage, error)
	// ShareWithOwner returns the URI of the copy shared with ownerDID, creating it when absent.
	ShareWithOwner(ctx context.Context, holderDID, ownerDID, uri, category string) (string, error)
}
