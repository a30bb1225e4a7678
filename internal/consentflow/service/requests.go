package service

import (
	"walletgate/internal/consentflow/models"
	"walletgate/internal/guardian"
)

// PreviewResult is what the holder sees before accepting a contract.
type PreviewResult struct {
	Details models.ContractDetails `json:"contract"`
	Terms   models.Terms           `json:"terms"`
	// TermsURI is set when the holder already has live terms for the contract;
	// Terms then holds those saved terms instead of fresh minimum terms.
	TermsURI  string   `json:"termsUri,omitempty"`
	Truncated []string `json:"truncatedCategories,omitempty"`
}

// AcceptRequest is a first-time consent to a contract.
type AcceptRequest struct {
	Session     guardian.Session
	ContractURI string
	Terms       models.Terms
	Duration    models.ShareDuration
}

// AcceptResult reports the stored terms.
type AcceptResult struct {
	TermsURI         string `json:"termsUri,omitempty"`
	AlreadyConsented bool   `json:"alreadyConsented"`
	RedirectURL      string `json:"redirectUrl,omitempty"`
}

// UpdateRequest replaces saved terms with an edited copy.
type UpdateRequest struct {
	User     models.User
	TermsURI string
	Saved    models.Terms
	Edited   models.Terms
	Duration models.ShareDuration
}

// UpdateResult carries the reconciled terms and whether they were sent to the network.
type UpdateResult struct {
	Terms     models.Terms `json:"terms"`
	Saved     bool         `json:"saved"`
	Truncated []string     `json:"truncatedCategories,omitempty"`
}

// WithdrawRequest withdraws consent and optionally deletes the contract's credentials.
type WithdrawRequest struct {
	Session           guardian.Session
	TermsURI          string
	ContractURI       string
	DeleteCredentials bool
}

// WithdrawResult reports what was removed. On a partial failure Withdrawn is true
// and Deleted counts the records removed before the error.
type WithdrawResult struct {
	Withdrawn bool `json:"withdrawn"`
	Deleted   int  `json:"deleted"`
}
