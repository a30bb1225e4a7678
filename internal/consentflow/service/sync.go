package service

import (
	"context"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/livesync"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
)

// recordsPageSize is the page size used when gathering the holder's credentials for sync.
const recordsPageSize = 100

// Sync pushes the holder's credentials to every live consented contract.
// When recordsByCategory is nil the holder's whole index is used.
func (s *Service) Sync(ctx context.Context, user models.User, recordsByCategory map[string][]string) (*livesync.SyncResult, error) {
	if err := requireHolder(user.DID); err != nil {
		return nil, err
	}

	contracts, err := s.network.ConsentedContracts(ctx, user.DID)
	if err != nil {
		return nil, networkError(err, "failed to list consented contracts")
	}
	live := contracts[:0:0]
	for _, c := range contracts {
		if c.Status != models.TermsStatusWithdrawn {
			live = append(live, c)
		}
	}

	if recordsByCategory == nil {
		recordsByCategory, err = s.recordsByCategory(ctx, user.DID)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.syncer.SyncContracts(ctx, user.DID, recordsByCategory, live)
	if err != nil {
		return nil, err
	}

	if result.Pruned > 0 {
		s.emitAudit(ctx, audit.Event{
			HolderDID: user.DID,
			Action:    models.AuditActionTermsPruned,
			Decision:  models.AuditDecisionUpdated,
			Reason:    models.AuditReasonLiveSync,
			Count:     result.Pruned,
		})
	}
	s.emitAudit(ctx, audit.Event{
		HolderDID: user.DID,
		Action:    models.AuditActionCredentialsSync,
		Decision:  models.AuditDecisionUpdated,
		Reason:    models.AuditReasonLiveSync,
		Count:     result.Synced,
	})
	return &result, nil
}

// recordsByCategory groups every indexed credential URI by category.
func (s *Service) recordsByCategory(ctx context.Context, holderDID string) (map[string][]string, error) {
	out := make(map[string][]string)
	cursor := ""
	for {
		page, err := s.index.Page(ctx, holderDID, cursor, recordsPageSize)
		if err != nil {
			return nil, networkError(err, "failed to read credential index")
		}
		collectRecords(out, page.Records)
		if !page.HasMore || page.Cursor == "" {
			return out, nil
		}
		cursor = page.Cursor
	}
}

func collectRecords(out map[string][]string, records []wallet.CredentialRecord) {
	for _, rec := range records {
		if rec.Category == "" || rec.URI == "" {
			continue
		}
		out[rec.Category] = append(out[rec.Category], rec.URI)
	}
}
