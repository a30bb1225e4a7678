package livesync

import (
	"context"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/wallet"
)

// OwnerPageSize is the page size used when walking the whole index.
const OwnerPageSize = 100

// PruneStale returns a copy of t with every shared URI that is not in valid removed,
// and the number of URIs dropped. Categories are pruned whether or not they are live.
func PruneStale(t models.Terms, valid map[string]struct{}) (models.Terms, int) {
	next := terms.Clone(t)
	removed := 0
	for name, term := range next.Read.Credentials.Categories {
		kept := make([]string, 0, len(term.Shared))
		for _, uri := range term.Shared {
			if _, ok := valid[uri]; ok {
				kept = append(kept, uri)
			}
		}
		removed += len(term.Shared) - len(kept)
		term.Shared = kept
		next.Read.Credentials.Categories[name] = term
	}
	return next, removed
}

// SharedWithOwner walks the holder's whole index and collects every URI currently
// shared with ownerDID.
func SharedWithOwner(ctx context.Context, index wallet.CredentialIndex, holderDID, ownerDID string) (map[string]struct{}, error) {
	shared := make(map[string]struct{})
	cursor := ""
	for {
		page, err := index.Page(ctx, holderDID, cursor, OwnerPageSize)
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			for _, uri := range rec.SharedURIs[ownerDID] {
				shared[uri] = struct{}{}
			}
		}
		if !page.HasMore || page.Cursor == "" {
			return shared, nil
		}
		cursor = page.Cursor
	}
}
