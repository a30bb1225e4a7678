package memory

import (
	"context"
	"strconv"

	"walletgate/internal/sentinel"
	"walletgate/internal/wallet"
)

func (w *Wallet) ByCategory(_ context.Context, holderDID, category string, limit int) ([]wallet.CredentialRecord, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []wallet.CredentialRecord
	for _, rec := range w.credentials[holderDID] {
		if limit > 0 && len(out) == limit {
			break
		}
		if rec.Category == category {
			rec.SharedURIs = cloneShared(rec.SharedURIs)
			out = append(out, rec)
		}
	}
	return out, nil
}

func (w *Wallet) Page(_ context.Context, holderDID, cursor string, limit int) (wallet.IndexPage, error) {
	offset, err := parseCursor(cursor)
	if err != nil {
		return wallet.IndexPage{}, sentinel.ErrInvalidInput
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	records := w.credentials[holderDID]
	if offset > len(records) {
		offset = len(records)
	}
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	page := wallet.IndexPage{Records: make([]wallet.CredentialRecord, 0, end-offset)}
	for _, rec := range records[offset:end] {
		rec.SharedURIs = cloneShared(rec.SharedURIs)
		page.Records = append(page.Records, rec)
	}
	if end < len(records) {
		page.HasMore = true
		page.Cursor = strconv.Itoa(end)
	}
	return page, nil
}

// ShareWithOwner reuses the first copy already shared with ownerDID, or mints one.
func (w *Wallet) ShareWithOwner(_ context.Context, holderDID, ownerDID, uri, _ string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	records := w.credentials[holderDID]
	for i := range records {
		if records[i].URI != uri {
			continue
		}
		if existing := records[i].SharedURIs[ownerDID]; len(existing) > 0 {
			return existing[0], nil
		}
		if records[i].SharedURIs == nil {
			records[i].SharedURIs = make(map[string][]string)
		}
		shared := newURI("shared")
		records[i].SharedURIs[ownerDID] = []string{shared}
		return shared, nil
	}
	return "", sentinel.ErrNotFound
}
