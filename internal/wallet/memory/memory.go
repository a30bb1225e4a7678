// Package memory is an in-process wallet network: consent-flow contracts and terms,
// per-holder credential indexes, and the app store. It enforces the same rules as the
// network service so the gateway can run without one.
package memory

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
)

type consentRecord struct {
	holderDID   string
	contractURI string
	terms       models.Terms
	expiresAt   string
	oneTime     bool
	status      models.TermsStatus
}

// Wallet implements wallet.ConsentNetwork, wallet.CredentialIndex, and wallet.AppStore.
type Wallet struct {
	mu sync.RWMutex

	contracts map[string]models.ContractDetails
	consents  map[string]*consentRecord
	// active maps holder|contract to the live terms URI.
	active      map[string]string
	credentials map[string][]wallet.CredentialRecord

	listings     map[string]wallet.Listing
	listingOrder []string
	installs     map[string]map[string]time.Time

	now func() time.Time
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithClock overrides the clock used for install timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Wallet) {
		w.now = now
	}
}

func New(opts ...Option) *Wallet {
	w := &Wallet{
		contracts:   make(map[string]models.ContractDetails),
		consents:    make(map[string]*consentRecord),
		active:      make(map[string]string),
		credentials: make(map[string][]wallet.CredentialRecord),
		listings:    make(map[string]wallet.Listing),
		installs:    make(map[string]map[string]time.Time),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PublishContract stores a contract and returns its URI, minting one when empty.
func (w *Wallet) PublishContract(details models.ContractDetails) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if details.URI == "" {
		details.URI = newURI("contract")
	}
	details.Contract.Normalize()
	w.contracts[details.URI] = details
	return details.URI
}

// AddCredential appends a record to the holder's index and returns it with ID and URI filled in.
func (w *Wallet) AddCredential(holderDID string, rec wallet.CredentialRecord) wallet.CredentialRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.URI == "" {
		rec.URI = newURI("credential")
	}
	rec.SharedURIs = cloneShared(rec.SharedURIs)
	w.credentials[holderDID] = append(w.credentials[holderDID], rec)
	return rec
}

func newURI(kind string) string {
	return fmt.Sprintf("lc:memory:%s:%s", kind, uuid.NewString())
}

func activeKey(holderDID, contractURI string) string {
	return holderDID + "|" + contractURI
}

func cloneShared(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// parseCursor decodes an offset cursor. An empty cursor starts at zero.
func parseCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(cursor)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	return n, nil
}
