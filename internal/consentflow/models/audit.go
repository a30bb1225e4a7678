package models

// Audit event actions
const (
	AuditActionConsentAccepted  = "consent_accepted"
	AuditActionConsentExisting  = "consent_already_accepted"
	AuditActionTermsUpdated     = "terms_updated"
	AuditActionConsentWithdrawn = "consent_withdrawn"
	AuditActionTermsPruned      = "terms_pruned"
	AuditActionCredentialsSync  = "credentials_synced"
)

// Audit event decisions
const (
	AuditDecisionGranted   = "granted"
	AuditDecisionUpdated   = "updated"
	AuditDecisionWithdrawn = "withdrawn"
)

// Audit event reasons
const (
	AuditReasonUserInitiated = "user_initiated"
	AuditReasonLiveSync      = "live_sync"
)
