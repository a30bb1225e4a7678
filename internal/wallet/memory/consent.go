package memory

import (
	"context"
	"slices"
	"strings"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/sentinel"
	"walletgate/internal/wallet"
)

func (w *Wallet) GetContract(_ context.Context, contractURI string) (models.ContractDetails, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	details, ok := w.contracts[contractURI]
	if !ok {
		return models.ContractDetails{}, sentinel.ErrNotFound
	}
	return details, nil
}

func (w *Wallet) ConsentToContract(_ context.Context, holderDID string, req wallet.ConsentRequest) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.contracts[req.ContractURI]; !ok {
		return "", sentinel.ErrNotFound
	}
	key := activeKey(holderDID, req.ContractURI)
	if _, ok := w.active[key]; ok {
		return "", sentinel.ErrConflict
	}
	termsURI := newURI("terms")
	w.consents[termsURI] = &consentRecord{
		holderDID:   holderDID,
		contractURI: req.ContractURI,
		terms:       terms.Clone(req.Terms),
		expiresAt:   req.ExpiresAt,
		oneTime:     req.OneTime,
		status:      models.TermsStatusLive,
	}
	w.active[key] = termsURI
	return termsURI, nil
}

// ownedLive returns the holder's live consent record for termsURI. Caller holds the lock.
func (w *Wallet) ownedLive(holderDID, termsURI string) (*consentRecord, error) {
	rec, ok := w.consents[termsURI]
	if !ok || rec.holderDID != holderDID {
		return nil, sentinel.ErrNotFound
	}
	if rec.status != models.TermsStatusLive {
		return nil, sentinel.ErrInvalidState
	}
	return rec, nil
}

func (w *Wallet) UpdateTerms(_ context.Context, holderDID string, req wallet.TermsUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, err := w.ownedLive(holderDID, req.TermsURI)
	if err != nil {
		return err
	}
	rec.terms = terms.Clone(req.Terms)
	rec.expiresAt = req.ExpiresAt
	rec.oneTime = req.OneTime
	return nil
}

func (w *Wallet) WithdrawConsent(_ context.Context, holderDID, termsURI string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, err := w.ownedLive(holderDID, termsURI)
	if err != nil {
		return err
	}
	rec.status = models.TermsStatusWithdrawn
	delete(w.active, activeKey(holderDID, rec.contractURI))
	return nil
}

func (w *Wallet) ConsentedContracts(_ context.Context, holderDID string) ([]models.ConsentedContract, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []models.ConsentedContract
	for termsURI, rec := range w.consents {
		if rec.holderDID != holderDID || rec.status != models.TermsStatusLive {
			continue
		}
		oneTime := rec.oneTime
		out = append(out, models.ConsentedContract{
			Contract:  w.contracts[rec.contractURI],
			Terms:     terms.Clone(rec.terms),
			URI:       termsURI,
			ExpiresAt: rec.expiresAt,
			OneTime:   &oneTime,
			Status:    rec.status,
		})
	}
	slices.SortFunc(out, func(a, b models.ConsentedContract) int {
		return strings.Compare(a.URI, b.URI)
	})
	return out, nil
}

// SyncCredentialsToContract appends the URIs to the terms' shared lists.
func (w *Wallet) SyncCredentialsToContract(_ context.Context, holderDID, termsURI string, categories map[string][]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, err := w.ownedLive(holderDID, termsURI)
	if err != nil {
		return err
	}
	for category, uris := range categories {
		terms.ShareCredentials(&rec.terms, category, uris...)
	}
	return nil
}

func (w *Wallet) CredentialsFromContract(_ context.Context, holderDID, contractURI string) ([]wallet.CredentialRecord, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []wallet.CredentialRecord
	for _, rec := range w.credentials[holderDID] {
		if rec.ContractURI == contractURI {
			rec.SharedURIs = cloneShared(rec.SharedURIs)
			out = append(out, rec)
		}
	}
	return out, nil
}

func (w *Wallet) DeleteCredentialRecord(_ context.Context, holderDID, recordID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	records := w.credentials[holderDID]
	idx := slices.IndexFunc(records, func(r wallet.CredentialRecord) bool { return r.ID == recordID })
	if idx < 0 {
		return sentinel.ErrNotFound
	}
	w.credentials[holderDID] = slices.Delete(records, idx, idx+1)
	return nil
}
