package handler

import (
	"strings"

	"walletgate/internal/consentflow/models"
	dErrors "walletgate/pkg/domain-errors"
	"walletgate/pkg/validation"
)

// AcceptRequest consents to a contract.
type AcceptRequest struct {
	ContractURI string               `json:"contractUri" validate:"required,max=2048"`
	Terms       models.Terms         `json:"terms"`
	Duration    models.ShareDuration `json:"duration"`
	GuardianPIN string               `json:"guardianPin,omitempty" validate:"omitempty,max=64"`
}

// Normalize trims identifiers.
func (r *AcceptRequest) Normalize() {
	r.ContractURI = strings.TrimSpace(r.ContractURI)
	r.Duration.CustomDuration = strings.TrimSpace(r.Duration.CustomDuration)
}

// Validate checks that the request is well-formed.
func (r *AcceptRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validateTerms(r.Terms)
}

// UpdateTermsRequest replaces saved terms with edited terms.
type UpdateTermsRequest struct {
	TermsURI string               `json:"termsUri" validate:"required,max=2048"`
	Saved    models.Terms         `json:"saved"`
	Edited   models.Terms         `json:"edited"`
	Duration models.ShareDuration `json:"duration"`
}

// Normalize trims identifiers.
func (r *UpdateTermsRequest) Normalize() {
	r.TermsURI = strings.TrimSpace(r.TermsURI)
	r.Duration.CustomDuration = strings.TrimSpace(r.Duration.CustomDuration)
}

// Validate checks that the request is well-formed.
func (r *UpdateTermsRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validateTerms(r.Edited)
}

// WithdrawRequest withdraws consent for a terms URI.
type WithdrawRequest struct {
	TermsURI          string `json:"termsUri" validate:"required,max=2048"`
	ContractURI       string `json:"contractUri,omitempty" validate:"required_if=DeleteCredentials true,omitempty,max=2048"`
	DeleteCredentials bool   `json:"deleteCredentials"`
	GuardianPIN       string `json:"guardianPin,omitempty" validate:"omitempty,max=64"`
}

// Normalize trims identifiers.
func (r *WithdrawRequest) Normalize() {
	r.TermsURI = strings.TrimSpace(r.TermsURI)
	r.ContractURI = strings.TrimSpace(r.ContractURI)
}

// Validate checks that the request is well-formed.
func (r *WithdrawRequest) Validate() error {
	return validation.Validate(r)
}

// SyncRequest optionally names the credentials to sync, keyed by category.
// A missing map syncs the holder's whole index.
type SyncRequest struct {
	Records map[string][]string `json:"records,omitempty"`
}

// Validate checks that the request is well-formed.
func (r *SyncRequest) Validate() error {
	if err := validation.CheckSliceCount("categories", len(r.Records), validation.MaxCategories); err != nil {
		return err
	}
	for _, uris := range r.Records {
		if err := validation.CheckSliceCount("records", len(uris), validation.MaxSharedURIs); err != nil {
			return err
		}
		if err := validation.CheckEachStringLength("record uri", uris, validation.MaxURILength); err != nil {
			return err
		}
	}
	return nil
}

func validateTerms(t models.Terms) error {
	if err := validation.CheckSliceCount("categories", len(t.Read.Credentials.Categories), validation.MaxCategories); err != nil {
		return err
	}
	if err := validation.CheckSliceCount("personal fields", len(t.Read.Personal), validation.MaxPersonalFields); err != nil {
		return err
	}
	for name, term := range t.Read.Credentials.Categories {
		if term.ShareAll && !term.Sharing {
			return dErrors.New(dErrors.CodeValidation, "category "+name+" has shareAll without sharing")
		}
		if err := validation.CheckSliceCount("shared uris", len(term.Shared), validation.MaxSharedURIs); err != nil {
			return err
		}
		if err := validation.CheckEachStringLength("shared uri", term.Shared, validation.MaxURILength); err != nil {
			return err
		}
	}
	return nil
}
