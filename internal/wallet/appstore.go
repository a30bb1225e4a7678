package wallet

import "context"

// ListingStatus is the lifecycle state of an app-store listing.
type ListingStatus string

const (
	ListingDraft         ListingStatus = "DRAFT"
	ListingPendingReview ListingStatus = "PENDING_REVIEW"
	ListingListed        ListingStatus = "LISTED"
	ListingArchived      ListingStatus = "ARCHIVED"
)

// IsValid reports whether s is a known listing status.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingDraft, ListingPendingReview, ListingListed, ListingArchived:
		return true
	}
	return false
}

// LaunchType is how the wallet opens an installed app.
type LaunchType string

const (
	LaunchEmbeddedIframe  LaunchType = "EMBEDDED_IFRAME"
	LaunchSecondScreen    LaunchType = "SECOND_SCREEN"
	LaunchDirectLink      LaunchType = "DIRECT_LINK"
	LaunchConsentRedirect LaunchType = "CONSENT_REDIRECT"
	LaunchServerHeadless  LaunchType = "SERVER_HEADLESS"
	LaunchAITutor         LaunchType = "AI_TUTOR"
)

// PromotionLevel orders listings in the store front.
type PromotionLevel string

const (
	PromotionFeaturedCarousel PromotionLevel = "FEATURED_CAROUSEL"
	PromotionCuratedList      PromotionLevel = "CURATED_LIST"
	PromotionStandard         PromotionLevel = "STANDARD"
	PromotionDemoted          PromotionLevel = "DEMOTED"
)

// IsValid reports whether p is a known promotion level.
func (p PromotionLevel) IsValid() bool {
	switch p {
	case PromotionFeaturedCarousel, PromotionCuratedList, PromotionStandard, PromotionDemoted:
		return true
	}
	return false
}

// ListingInput is the caller-editable part of a listing.
type ListingInput struct {
	Slug                string     `json:"slug,omitempty" validate:"omitempty,max=100"`
	DisplayName         string     `json:"display_name" validate:"required,min=1,max=100"`
	Tagline             string     `json:"tagline" validate:"required,min=1,max=200"`
	FullDescription     string     `json:"full_description" validate:"required,min=1,max=5000"`
	IconURL             string     `json:"icon_url" validate:"required,url"`
	LaunchType          LaunchType `json:"launch_type" validate:"required,oneof=EMBEDDED_IFRAME SECOND_SCREEN DIRECT_LINK CONSENT_REDIRECT SERVER_HEADLESS AI_TUTOR"`
	LaunchConfigJSON    string     `json:"launch_config_json" validate:"omitempty,json"`
	Category            string     `json:"category,omitempty"`
	PromoVideoURL       string     `json:"promo_video_url,omitempty" validate:"omitempty,url"`
	IOSAppStoreID       string     `json:"ios_app_store_id,omitempty"`
	AndroidAppStoreID   string     `json:"android_app_store_id,omitempty"`
	PrivacyPolicyURL    string     `json:"privacy_policy_url,omitempty" validate:"omitempty,url"`
	TermsURL            string     `json:"terms_url,omitempty" validate:"omitempty,url"`
	Highlights          []string   `json:"highlights,omitempty" validate:"omitempty,max=10,dive,max=200"`
	Screenshots         []string   `json:"screenshots,omitempty" validate:"omitempty,max=10,dive,url"`
	HeroBackgroundColor string     `json:"hero_background_color,omitempty" validate:"omitempty,hexcolor"`
}

// ListingUpdate is a partial update; nil fields are left unchanged.
// Status and promotion change only through the admin calls.
type ListingUpdate struct {
	DisplayName      *string     `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Tagline          *string     `json:"tagline,omitempty" validate:"omitempty,min=1,max=200"`
	FullDescription  *string     `json:"full_description,omitempty" validate:"omitempty,min=1,max=5000"`
	IconURL          *string     `json:"icon_url,omitempty" validate:"omitempty,url"`
	LaunchType       *LaunchType `json:"launch_type,omitempty" validate:"omitempty,oneof=EMBEDDED_IFRAME SECOND_SCREEN DIRECT_LINK CONSENT_REDIRECT SERVER_HEADLESS AI_TUTOR"`
	LaunchConfigJSON *string     `json:"launch_config_json,omitempty" validate:"omitempty,json"`
	Category         *string     `json:"category,omitempty"`
	PrivacyPolicyURL *string     `json:"privacy_policy_url,omitempty" validate:"omitempty,url"`
	TermsURL         *string     `json:"terms_url,omitempty" validate:"omitempty,url"`
	Highlights       []string    `json:"highlights,omitempty" validate:"omitempty,max=10,dive,max=200"`
	Screenshots      []string    `json:"screenshots,omitempty" validate:"omitempty,max=10,dive,url"`
}

// Listing is an app-store listing as stored by the network.
type Listing struct {
	ListingInput
	ListingID      string         `json:"listing_id"`
	IntegrationID  string         `json:"integration_id,omitempty"`
	OwnerDID       string         `json:"owner_did,omitempty"`
	Status         ListingStatus  `json:"app_listing_status"`
	PromotionLevel PromotionLevel `json:"promotion_level,omitempty"`
}

// InstalledApp is a listing installed by a holder.
type InstalledApp struct {
	Listing
	InstalledAt string `json:"installed_at"`
}

// ListingQuery selects a page of listings.
type ListingQuery struct {
	Limit    int
	Cursor   string
	Status   ListingStatus
	Category string
}

// ListingPage is one page of listings.
type ListingPage struct {
	Records []Listing `json:"records"`
	HasMore bool      `json:"hasMore"`
	Cursor  string    `json:"cursor,omitempty"`
}

// InstalledPage is one page of installed apps.
type InstalledPage struct {
	Records []InstalledApp `json:"records"`
	HasMore bool           `json:"hasMore"`
	Cursor  string         `json:"cursor,omitempty"`
}

// AppStore is the app-store surface of the wallet network. It stores listings and
// installs; lifecycle rules are enforced by callers and re-checked by the network.
// Listing mutations carry the acting developer's DID; the network rejects callers
// other than the listing's owner with sentinel.ErrForbidden.
type AppStore interface {
	CreateListing(ctx context.Context, ownerDID, integrationID string, in ListingInput) (Listing, error)
	UpdateListing(ctx context.Context, ownerDID, listingID string, in ListingUpdate) (Listing, error)
	DeleteListing(ctx context.Context, ownerDID, listingID string) error
	GetListing(ctx context.Context, listingID string) (Listing, error)
	ListListings(ctx context.Context, q ListingQuery) (ListingPage, error)
	SetListingStatus(ctx context.Context, listingID string, status ListingStatus) (Listing, error)
	SetPromotionLevel(ctx context.Context, listingID string, level PromotionLevel) (Listing, error)
	InstallApp(ctx context.Context, holderDID, listingID string) error
	UninstallApp(ctx context.Context, holderDID, listingID string) error
	InstalledApps(ctx context.Context, holderDID string, q ListingQuery) (InstalledPage, error)
}
