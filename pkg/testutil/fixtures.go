package testutil

import (
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
)

// Test DIDs for deterministic fixtures.
const (
	HolderDID   = "did:key:z6MkTestHolder"
	ChildDID    = "did:key:z6MkTestChild"
	GuardianDID = "did:key:z6MkTestGuardian"
	OwnerDID    = "did:web:tutor.example.com"
)

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// Holder returns an adult wallet user with every profile field set.
func Holder() models.User {
	return models.User{
		DID:   HolderDID,
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Image: "https://example.com/ada.png",
	}
}

// Child returns a switched child profile whose guardian is GuardianDID.
func Child() models.User {
	return models.User{
		DID:             ChildDID,
		Name:            "Byron",
		SwitchedProfile: true,
		ProfileType:     models.ProfileTypeChild,
		GuardianDID:     GuardianDID,
	}
}

// ExampleContract reads one required, one default-on, and one optional category,
// plus the name (required) and email (optional) personal fields.
func ExampleContract() models.Contract {
	c := models.Contract{
		Read: models.ContractRead{
			Credentials: models.ContractCredentials{Categories: map[string]models.Permission{
				"Achievement": {Required: true},
				"Course":      {Required: false, DefaultEnabled: BoolPtr(true)},
				"Badge":       {Required: false},
			}},
			Personal: map[string]models.Permission{
				"name":  {Required: true},
				"email": {Required: false},
			},
		},
		Write: models.ContractWrite{
			Credentials: models.ContractCredentials{Categories: map[string]models.Permission{
				"Achievement": {Required: true},
			}},
		},
	}
	c.Normalize()
	return c
}

// ExampleDetails wraps ExampleContract with listing metadata.
func ExampleDetails(uri string) models.ContractDetails {
	return models.ContractDetails{
		URI:         uri,
		Name:        "Tutor",
		Description: "Shares your learning record with your tutor",
		Owner:       models.Profile{DID: OwnerDID, ProfileID: "tutor"},
		Contract:    ExampleContract(),
	}
}

// ListingInput returns a listing input that passes validation.
func ListingInput() wallet.ListingInput {
	return wallet.ListingInput{
		DisplayName:      "Study Buddy",
		Tagline:          "Flashcards that sync with your wallet",
		FullDescription:  "Study Buddy turns your course credentials into spaced-repetition decks.",
		IconURL:          "https://cdn.example.com/study-buddy.png",
		LaunchType:       wallet.LaunchEmbeddedIframe,
		LaunchConfigJSON: `{"url":"https://study-buddy.example.com"}`,
	}
}
