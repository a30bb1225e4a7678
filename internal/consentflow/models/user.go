package models

// ProfileType distinguishes managed profiles a user can switch into.
type ProfileType string

const (
	ProfileTypeChild   ProfileType = "child"
	ProfileTypeParent  ProfileType = "parent"
	ProfileTypeService ProfileType = "service"
)

// User is the acting wallet identity. It is passed explicitly instead of read from a global store.
type User struct {
	DID   string `json:"did"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`

	// SwitchedProfile is set when the session acts as a managed profile.
	SwitchedProfile bool        `json:"switchedProfile,omitempty"`
	ProfileType     ProfileType `json:"profileType,omitempty"`
	// GuardianDID is the parent account that must confirm actions for child profiles.
	GuardianDID string `json:"guardianDid,omitempty"`
}

// IsChildProfile reports whether actions must pass the guardian gate.
func (u User) IsChildProfile() bool {
	return u.SwitchedProfile && u.ProfileType == ProfileTypeChild
}
