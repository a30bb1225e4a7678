package appstore

import (
	"context"
	"errors"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/sentinel"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
)

// Install adds a LISTED app to the holder's wallet. Listings in any other state are
// reported as not found; a second install is a conflict.
func (s *Service) Install(ctx context.Context, holder models.User, listingID string) error {
	if holder.DID == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "missing holder context")
	}
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return networkError(err, "failed to load listing")
	}
	if listing.Status != wallet.ListingListed {
		return dErrors.New(dErrors.CodeNotFound, "listing not found")
	}
	if err := s.store.InstallApp(ctx, holder.DID, listingID); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.Wrap(err, dErrors.CodeConflict, "app already installed")
		}
		return networkError(err, "failed to install app")
	}
	s.emitAudit(ctx, audit.Event{
		HolderDID: holder.DID,
		Subject:   listingID,
		Action:    AuditActionAppInstalled,
		Decision:  models.AuditDecisionGranted,
		Reason:    models.AuditReasonUserInitiated,
	})
	return nil
}

// Uninstall removes an installed app.
func (s *Service) Uninstall(ctx context.Context, holder models.User, listingID string) error {
	if holder.DID == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "missing holder context")
	}
	if err := s.store.UninstallApp(ctx, holder.DID, listingID); err != nil {
		return networkError(err, "failed to uninstall app")
	}
	s.emitAudit(ctx, audit.Event{
		HolderDID: holder.DID,
		Subject:   listingID,
		Action:    AuditActionAppUninstalled,
		Decision:  models.AuditDecisionWithdrawn,
		Reason:    models.AuditReasonUserInitiated,
	})
	return nil
}

// Installed pages through the holder's installed apps, newest first.
func (s *Service) Installed(ctx context.Context, holder models.User, q wallet.ListingQuery) (wallet.InstalledPage, error) {
	if holder.DID == "" {
		return wallet.InstalledPage{}, dErrors.New(dErrors.CodeUnauthorized, "missing holder context")
	}
	q.Limit = clampLimit(q.Limit)
	page, err := s.store.InstalledApps(ctx, holder.DID, q)
	if err != nil {
		return wallet.InstalledPage{}, networkError(err, "failed to list installed apps")
	}
	if page.Records == nil {
		page.Records = []wallet.InstalledApp{}
	}
	return page, nil
}
