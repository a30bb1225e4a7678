package models

import "encoding/json"

// Permission is a single contract entry for a personal field or credential category.
type Permission struct {
	Required       bool  `json:"required" yaml:"required"`
	DefaultEnabled *bool `json:"defaultEnabled,omitempty" yaml:"defaultEnabled,omitempty"`
}

// Enabled reports whether the permission starts switched on in fresh terms.
func (p Permission) Enabled() bool {
	return p.Required || (p.DefaultEnabled != nil && *p.DefaultEnabled)
}

// ContractCredentials holds the credential categories a contract reads or writes.
type ContractCredentials struct {
	Categories map[string]Permission `json:"categories" yaml:"categories"`
}

// ContractRead is the read half of a consent-flow contract.
type ContractRead struct {
	Anonymize   *bool                 `json:"anonymize,omitempty" yaml:"anonymize,omitempty"`
	Credentials ContractCredentials   `json:"credentials" yaml:"credentials"`
	Personal    map[string]Permission `json:"personal" yaml:"personal"`
}

// ContractWrite is the write half of a consent-flow contract.
type ContractWrite struct {
	Credentials ContractCredentials   `json:"credentials" yaml:"credentials"`
	Personal    map[string]Permission `json:"personal" yaml:"personal"`
}

// Contract is the read/write permission schema a third-party app declares.
type Contract struct {
	Read  ContractRead  `json:"read" yaml:"read"`
	Write ContractWrite `json:"write" yaml:"write"`
}

// Normalize replaces missing blocks with empty maps so callers never branch on nil.
func (c *Contract) Normalize() {
	if c.Read.Personal == nil {
		c.Read.Personal = map[string]Permission{}
	}
	if c.Read.Credentials.Categories == nil {
		c.Read.Credentials.Categories = map[string]Permission{}
	}
	if c.Write.Personal == nil {
		c.Write.Personal = map[string]Permission{}
	}
	if c.Write.Credentials.Categories == nil {
		c.Write.Credentials.Categories = map[string]Permission{}
	}
}

// Anonymized reports whether the contract asks for anonymized personal data.
func (c Contract) Anonymized() bool {
	return c.Read.Anonymize != nil && *c.Read.Anonymize
}

// UnmarshalJSON decodes a contract and fills in empty defaults for missing blocks.
func (c *Contract) UnmarshalJSON(data []byte) error {
	type plain Contract
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Contract(p)
	c.Normalize()
	return nil
}

// Profile identifies a network profile such as a contract owner.
type Profile struct {
	DID         string `json:"did"`
	ProfileID   string `json:"profileId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// ContractDetails is a contract together with the listing metadata the network returns.
type ContractDetails struct {
	URI                  string   `json:"uri"`
	Name                 string   `json:"name"`
	Subtitle             string   `json:"subtitle,omitempty"`
	Description          string   `json:"description,omitempty"`
	Image                string   `json:"image,omitempty"`
	Owner                Profile  `json:"owner"`
	Contract             Contract `json:"contract"`
	NeedsGuardianConsent bool     `json:"needsGuardianConsent,omitempty"`
	RedirectURL          string   `json:"redirectUrl,omitempty"`
	ExpiresAt            string   `json:"expiresAt,omitempty"`
}

// UnmarshalJSON decodes details and normalizes the contract even when the block is absent.
func (d *ContractDetails) UnmarshalJSON(data []byte) error {
	type plain ContractDetails
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = ContractDetails(p)
	d.Contract.Normalize()
	return nil
}
