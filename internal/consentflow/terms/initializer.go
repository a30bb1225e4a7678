// Package terms derives, compares, and edits consent-flow terms.
//
// Functions here are pure: they never call the network and never mutate their inputs
// unless the name says so (Set*, Toggle*).
package terms

import "walletgate/internal/consentflow/models"

// Placeholder values shared in place of personal data when a contract anonymizes reads.
const (
	AnonymousName  = "Anonymous"
	AnonymousEmail = "anonymous@hidden.com"
	AnonymousImage = "https://cdn.learncard.com/placeholders/anonymous-avatar.png"
)

// Personal fields with a known source on the user profile.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldImage = "image"
)

// PersonalEntry returns the value shared for a personal field.
// Unknown fields and fields the user has not filled in yield "".
func PersonalEntry(field string, user models.User, anonymize bool) string {
	if anonymize {
		switch field {
		case FieldName:
			return AnonymousName
		case FieldEmail:
			return AnonymousEmail
		case FieldImage:
			return AnonymousImage
		default:
			return ""
		}
	}
	switch field {
	case FieldName:
		return user.Name
	case FieldEmail:
		return user.Email
	case FieldImage:
		return user.Image
	default:
		return ""
	}
}

// MinimumTerms builds the default terms for a contract: every required or
// default-enabled entry is switched on, everything else is off.
// Live-sync categories start with an empty shared list; see livesync.Reconciler.
func MinimumTerms(contract models.Contract, user models.User) models.Terms {
	t := models.NewTerms()
	anonymize := contract.Anonymized()
	t.Read.Anonymize = anonymize

	for field, perm := range contract.Read.Personal {
		if perm.Enabled() {
			t.Read.Personal[field] = PersonalEntry(field, user, anonymize)
		} else {
			t.Read.Personal[field] = ""
		}
	}

	for field, perm := range contract.Write.Personal {
		t.Write.Personal[field] = perm.Enabled()
	}

	for category, perm := range contract.Read.Credentials.Categories {
		on := perm.Enabled()
		t.Read.Credentials.Categories[category] = models.Term{
			ShareAll: on,
			Sharing:  on,
			Shared:   []string{},
		}
	}

	for category, perm := range contract.Write.Credentials.Categories {
		t.Write.Credentials.Categories[category] = perm.Enabled()
	}

	return t
}
