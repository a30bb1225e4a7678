package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	HolderDID string    `json:"holderDid"`
	// Subject is the contract URI or listing ID the action concerns.
	Subject  string `json:"subject,omitempty"`
	TermsURI string `json:"termsUri,omitempty"`
	OwnerDID string `json:"ownerDid,omitempty"`
	Action   string `json:"action"`
	Decision string `json:"decision,omitempty"`
	Reason   string `json:"reason,omitempty"`
	// Count carries the number of affected items (pruned URIs, deleted records).
	Count     int    `json:"count,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
