package models

// Term is the user's sharing state for one credential category.
type Term struct {
	ShareAll   bool     `json:"shareAll"`
	Sharing    bool     `json:"sharing"`
	Shared     []string `json:"shared"`
	ShareUntil string   `json:"shareUntil,omitempty"`
}

// TermsReadCredentials mirrors ContractCredentials on the read side.
type TermsReadCredentials struct {
	ShareAll   *bool           `json:"shareAll,omitempty"`
	Sharing    *bool           `json:"sharing,omitempty"`
	Categories map[string]Term `json:"categories"`
}

// TermsRead holds what the app may read.
// Personal values are the shared strings; an empty string means the field is not shared.
type TermsRead struct {
	Anonymize   bool                 `json:"anonymize"`
	Credentials TermsReadCredentials `json:"credentials"`
	Personal    map[string]string    `json:"personal"`
}

// TermsWriteCredentials holds per-category write grants.
type TermsWriteCredentials struct {
	Categories map[string]bool `json:"categories"`
}

// TermsWrite holds what the app may write.
type TermsWrite struct {
	Credentials TermsWriteCredentials `json:"credentials"`
	Personal    map[string]bool       `json:"personal"`
}

// Terms are the permissions a user actually grants, shaped to mirror a Contract.
type Terms struct {
	Read          TermsRead  `json:"read"`
	Write         TermsWrite `json:"write"`
	DeniedWriters []string   `json:"deniedWriters,omitempty"`
}

// NewTerms returns terms with every map allocated.
func NewTerms() Terms {
	return Terms{
		Read: TermsRead{
			Credentials: TermsReadCredentials{Categories: map[string]Term{}},
			Personal:    map[string]string{},
		},
		Write: TermsWrite{
			Credentials: TermsWriteCredentials{Categories: map[string]bool{}},
			Personal:    map[string]bool{},
		},
	}
}

// TermsStatus is the lifecycle state the network reports for stored terms.
type TermsStatus string

const (
	TermsStatusLive      TermsStatus = "live"
	TermsStatusStale     TermsStatus = "stale"
	TermsStatusWithdrawn TermsStatus = "withdrawn"
)

// ConsentedContract is a contract the user has already consented to.
type ConsentedContract struct {
	Contract  ContractDetails `json:"contract"`
	Terms     Terms           `json:"terms"`
	URI       string          `json:"uri"`
	ExpiresAt string          `json:"expiresAt,omitempty"`
	OneTime   *bool           `json:"oneTime,omitempty"`
	Status    TermsStatus     `json:"status,omitempty"`
}

// ShareDuration controls how long granted terms stay valid.
// CustomDuration is an ISO timestamp forwarded as expiresAt; empty means no expiry.
type ShareDuration struct {
	OneTimeShare   bool   `json:"oneTimeShare"`
	CustomDuration string `json:"customDuration"`
}
