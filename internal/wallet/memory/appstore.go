package memory

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"walletgate/internal/sentinel"
	"walletgate/internal/wallet"
)

const defaultListingLimit = 25

func (w *Wallet) CreateListing(_ context.Context, ownerDID, integrationID string, in wallet.ListingInput) (wallet.Listing, error) {
	if ownerDID == "" {
		return wallet.Listing{}, sentinel.ErrInvalidInput
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	listing := wallet.Listing{
		ListingInput:   cloneInput(in),
		ListingID:      uuid.NewString(),
		IntegrationID:  integrationID,
		OwnerDID:       ownerDID,
		Status:         wallet.ListingDraft,
		PromotionLevel: wallet.PromotionStandard,
	}
	w.listings[listing.ListingID] = listing
	w.listingOrder = append(w.listingOrder, listing.ListingID)
	return listing, nil
}

func (w *Wallet) UpdateListing(_ context.Context, ownerDID, listingID string, in wallet.ListingUpdate) (wallet.Listing, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	listing, ok := w.listings[listingID]
	if !ok {
		return wallet.Listing{}, sentinel.ErrNotFound
	}
	if listing.OwnerDID != ownerDID {
		return wallet.Listing{}, sentinel.ErrForbidden
	}
	applyUpdate(&listing.ListingInput, in)
	w.listings[listingID] = listing
	return listing, nil
}

func applyUpdate(dst *wallet.ListingInput, in wallet.ListingUpdate) {
	set := func(field *string, v *string) {
		if v != nil {
			*field = *v
		}
	}
	set(&dst.DisplayName, in.DisplayName)
	set(&dst.Tagline, in.Tagline)
	set(&dst.FullDescription, in.FullDescription)
	set(&dst.IconURL, in.IconURL)
	set(&dst.LaunchConfigJSON, in.LaunchConfigJSON)
	set(&dst.Category, in.Category)
	set(&dst.PrivacyPolicyURL, in.PrivacyPolicyURL)
	set(&dst.TermsURL, in.TermsURL)
	if in.LaunchType != nil {
		dst.LaunchType = *in.LaunchType
	}
	if in.Highlights != nil {
		dst.Highlights = slices.Clone(in.Highlights)
	}
	if in.Screenshots != nil {
		dst.Screenshots = slices.Clone(in.Screenshots)
	}
}

func cloneInput(in wallet.ListingInput) wallet.ListingInput {
	in.Highlights = slices.Clone(in.Highlights)
	in.Screenshots = slices.Clone(in.Screenshots)
	return in
}

func (w *Wallet) DeleteListing(_ context.Context, ownerDID, listingID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	listing, ok := w.listings[listingID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if listing.OwnerDID != ownerDID {
		return sentinel.ErrForbidden
	}
	delete(w.listings, listingID)
	w.listingOrder = slices.DeleteFunc(w.listingOrder, func(id string) bool { return id == listingID })
	for _, installed := range w.installs {
		delete(installed, listingID)
	}
	return nil
}

func (w *Wallet) GetListing(_ context.Context, listingID string) (wallet.Listing, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	listing, ok := w.listings[listingID]
	if !ok {
		return wallet.Listing{}, sentinel.ErrNotFound
	}
	listing.ListingInput = cloneInput(listing.ListingInput)
	return listing, nil
}

// ListListings pages through listings in creation order. It fetches one record beyond
// the limit to decide HasMore.
func (w *Wallet) ListListings(_ context.Context, q wallet.ListingQuery) (wallet.ListingPage, error) {
	offset, err := parseCursor(q.Cursor)
	if err != nil {
		return wallet.ListingPage{}, sentinel.ErrInvalidInput
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	var matched []wallet.Listing
	for _, id := range w.listingOrder {
		listing := w.listings[id]
		if q.Status != "" && listing.Status != q.Status {
			continue
		}
		if q.Category != "" && listing.Category != q.Category {
			continue
		}
		matched = append(matched, listing)
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	window := matched[offset:min(len(matched), offset+limit+1)]
	page := wallet.ListingPage{HasMore: len(window) > limit}
	if page.HasMore {
		window = window[:limit]
		page.Cursor = strconv.Itoa(offset + limit)
	}
	page.Records = make([]wallet.Listing, 0, len(window))
	for _, listing := range window {
		listing.ListingInput = cloneInput(listing.ListingInput)
		page.Records = append(page.Records, listing)
	}
	return page, nil
}

func (w *Wallet) SetListingStatus(_ context.Context, listingID string, status wallet.ListingStatus) (wallet.Listing, error) {
	if !status.IsValid() {
		return wallet.Listing{}, sentinel.ErrInvalidInput
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	listing, ok := w.listings[listingID]
	if !ok {
		return wallet.Listing{}, sentinel.ErrNotFound
	}
	listing.Status = status
	w.listings[listingID] = listing
	return listing, nil
}

func (w *Wallet) SetPromotionLevel(_ context.Context, listingID string, level wallet.PromotionLevel) (wallet.Listing, error) {
	if !level.IsValid() {
		return wallet.Listing{}, sentinel.ErrInvalidInput
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	listing, ok := w.listings[listingID]
	if !ok {
		return wallet.Listing{}, sentinel.ErrNotFound
	}
	listing.PromotionLevel = level
	w.listings[listingID] = listing
	return listing, nil
}

// InstallApp installs a LISTED app. Unlisted apps are reported as not found.
func (w *Wallet) InstallApp(_ context.Context, holderDID, listingID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	listing, ok := w.listings[listingID]
	if !ok || listing.Status != wallet.ListingListed {
		return sentinel.ErrNotFound
	}
	installed := w.installs[holderDID]
	if installed == nil {
		installed = make(map[string]time.Time)
		w.installs[holderDID] = installed
	}
	if _, ok := installed[listingID]; ok {
		return sentinel.ErrConflict
	}
	installed[listingID] = w.now()
	return nil
}

func (w *Wallet) UninstallApp(_ context.Context, holderDID, listingID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.installs[holderDID][listingID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(w.installs[holderDID], listingID)
	return nil
}

// InstalledApps pages through the holder's installs, most recent first.
func (w *Wallet) InstalledApps(_ context.Context, holderDID string, q wallet.ListingQuery) (wallet.InstalledPage, error) {
	offset, err := parseCursor(q.Cursor)
	if err != nil {
		return wallet.InstalledPage{}, sentinel.ErrInvalidInput
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	type install struct {
		listing wallet.Listing
		at      time.Time
	}
	installs := make([]install, 0, len(w.installs[holderDID]))
	for id, at := range w.installs[holderDID] {
		if listing, ok := w.listings[id]; ok {
			installs = append(installs, install{listing: listing, at: at})
		}
	}
	slices.SortFunc(installs, func(a, b install) int {
		if c := b.at.Compare(a.at); c != 0 {
			return c
		}
		return strings.Compare(a.listing.ListingID, b.listing.ListingID)
	})
	apps := make([]wallet.InstalledApp, 0, len(installs))
	for _, in := range installs {
		listing := in.listing
		listing.ListingInput = cloneInput(listing.ListingInput)
		apps = append(apps, wallet.InstalledApp{Listing: listing, InstalledAt: in.at.UTC().Format(time.RFC3339)})
	}
	if offset > len(apps) {
		offset = len(apps)
	}
	window := apps[offset:min(len(apps), offset+limit+1)]
	page := wallet.InstalledPage{HasMore: len(window) > limit}
	if page.HasMore {
		window = window[:limit]
		page.Cursor = strconv.Itoa(offset + limit)
	}
	page.Records = window
	return page, nil
}
