package appstore

import (
	"context"
	"strings"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
	strutil "walletgate/pkg/platform/strings"
	"walletgate/pkg/validation"
)

// CreateListing validates in and creates a DRAFT listing under integrationID.
func (s *Service) CreateListing(ctx context.Context, actor models.User, integrationID string, in wallet.ListingInput) (wallet.Listing, error) {
	integrationID = strings.TrimSpace(integrationID)
	if integrationID == "" {
		return wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "integration id is required")
	}
	normalizeInput(&in)
	if err := validation.Validate(&in); err != nil {
		return wallet.Listing{}, err
	}

	listing, err := s.store.CreateListing(ctx, actor.DID, integrationID, in)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to create listing")
	}
	s.logger.InfoContext(ctx, "listing created",
		"listing_id", listing.ListingID,
		"integration_id", integrationID,
	)
	s.emitAudit(ctx, audit.Event{
		HolderDID: actor.DID,
		Subject:   listing.ListingID,
		Action:    AuditActionListingCreated,
		Decision:  string(listing.Status),
	})
	return listing, nil
}

// UpdateListing applies a partial update. Status and promotion are untouched.
// Only the listing's owner may update it.
func (s *Service) UpdateListing(ctx context.Context, actor models.User, listingID string, in wallet.ListingUpdate) (wallet.Listing, error) {
	if listingID == "" {
		return wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "listing id is required")
	}
	normalizeUpdate(&in)
	if err := validation.Validate(&in); err != nil {
		return wallet.Listing{}, err
	}
	if _, err := s.owned(ctx, actor, listingID); err != nil {
		return wallet.Listing{}, err
	}
	listing, err := s.store.UpdateListing(ctx, actor.DID, listingID, in)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to update listing")
	}
	return listing, nil
}

// DeleteListing removes a listing and every install of it. Owner only.
func (s *Service) DeleteListing(ctx context.Context, actor models.User, listingID string) error {
	if listingID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "listing id is required")
	}
	if _, err := s.owned(ctx, actor, listingID); err != nil {
		return err
	}
	if err := s.store.DeleteListing(ctx, actor.DID, listingID); err != nil {
		return networkError(err, "failed to delete listing")
	}
	s.logger.InfoContext(ctx, "listing deleted",
		"listing_id", listingID,
	)
	return nil
}

// Get returns one listing. LISTED listings are public; any other status is
// visible only to its owner and to admins, and reads as not found to everyone else.
func (s *Service) Get(ctx context.Context, actor models.User, listingID string) (wallet.Listing, error) {
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to load listing")
	}
	if listing.Status == wallet.ListingListed || isOwner(actor, listing) || s.IsAdmin(actor) {
		return listing, nil
	}
	return wallet.Listing{}, dErrors.New(dErrors.CodeNotFound, "listing not found")
}

// SubmitForReview moves the owner's DRAFT listing to PENDING_REVIEW.
func (s *Service) SubmitForReview(ctx context.Context, actor models.User, listingID string) (wallet.Listing, error) {
	listing, err := s.owned(ctx, actor, listingID)
	if err != nil {
		return wallet.Listing{}, err
	}
	if listing.Status != wallet.ListingDraft {
		return wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "only draft listings can be submitted for review")
	}
	updated, err := s.store.SetListingStatus(ctx, listingID, wallet.ListingPendingReview)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to submit listing")
	}
	s.emitAudit(ctx, audit.Event{
		HolderDID: actor.DID,
		Subject:   listingID,
		Action:    AuditActionListingSubmitted,
		Decision:  string(updated.Status),
	})
	return updated, nil
}

// owned loads a listing the actor is about to change. A listing the actor cannot
// read is not found; a visible listing owned by someone else is forbidden.
func (s *Service) owned(ctx context.Context, actor models.User, listingID string) (wallet.Listing, error) {
	listing, err := s.Get(ctx, actor, listingID)
	if err != nil {
		return wallet.Listing{}, err
	}
	if !isOwner(actor, listing) {
		return wallet.Listing{}, dErrors.New(dErrors.CodeForbidden, "listing belongs to another developer")
	}
	return listing, nil
}

func isOwner(actor models.User, listing wallet.Listing) bool {
	return actor.DID != "" && actor.DID == listing.OwnerDID
}

// AdminUpdateStatus sets any valid status. Admins only.
func (s *Service) AdminUpdateStatus(ctx context.Context, actor models.User, listingID string, status wallet.ListingStatus) (wallet.Listing, error) {
	if err := s.requireAdmin(actor); err != nil {
		return wallet.Listing{}, err
	}
	if !status.IsValid() {
		return wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "invalid listing status")
	}
	listing, err := s.store.SetListingStatus(ctx, listingID, status)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to update listing status")
	}
	s.logger.InfoContext(ctx, "listing status changed",
		"listing_id", listingID,
		"status", status,
		"admin_did", actor.DID,
	)
	s.emitAudit(ctx, audit.Event{
		HolderDID: actor.DID,
		Subject:   listingID,
		Action:    AuditActionListingStatus,
		Decision:  string(status),
	})
	return listing, nil
}

// AdminUpdatePromotion sets the store-front promotion level. Admins only.
func (s *Service) AdminUpdatePromotion(ctx context.Context, actor models.User, listingID string, level wallet.PromotionLevel) (wallet.Listing, error) {
	if err := s.requireAdmin(actor); err != nil {
		return wallet.Listing{}, err
	}
	if !level.IsValid() {
		return wallet.Listing{}, dErrors.New(dErrors.CodeBadRequest, "invalid promotion level")
	}
	listing, err := s.store.SetPromotionLevel(ctx, listingID, level)
	if err != nil {
		return wallet.Listing{}, networkError(err, "failed to update promotion level")
	}
	s.emitAudit(ctx, audit.Event{
		HolderDID: actor.DID,
		Subject:   listingID,
		Action:    AuditActionListingPromotion,
		Decision:  string(level),
	})
	return listing, nil
}

// Browse pages through listings. The store front passes ListingListed; admins may
// filter by any status or none.
func (s *Service) Browse(ctx context.Context, q wallet.ListingQuery) (wallet.ListingPage, error) {
	if q.Status != "" && !q.Status.IsValid() {
		return wallet.ListingPage{}, dErrors.New(dErrors.CodeBadRequest, "invalid listing status")
	}
	q.Limit = clampLimit(q.Limit)
	page, err := s.store.ListListings(ctx, q)
	if err != nil {
		return wallet.ListingPage{}, networkError(err, "failed to list listings")
	}
	if page.Records == nil {
		page.Records = []wallet.Listing{}
	}
	return page, nil
}

func normalizeInput(in *wallet.ListingInput) {
	in.Slug = strings.TrimSpace(in.Slug)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.FullDescription = strings.TrimSpace(in.FullDescription)
	in.IconURL = strings.TrimSpace(in.IconURL)
	in.Category = strings.TrimSpace(in.Category)
	in.Highlights = strutil.DedupeAndTrim(in.Highlights)
	in.Screenshots = strutil.DedupeAndTrim(in.Screenshots)
}

func normalizeUpdate(in *wallet.ListingUpdate) {
	in.DisplayName = strutil.TrimSpacePtr(in.DisplayName)
	in.Tagline = strutil.TrimSpacePtr(in.Tagline)
	in.IconURL = strutil.TrimSpacePtr(in.IconURL)
	in.Category = strutil.TrimSpacePtr(in.Category)
	in.Highlights = strutil.DedupeAndTrim(in.Highlights)
	in.Screenshots = strutil.DedupeAndTrim(in.Screenshots)
}
