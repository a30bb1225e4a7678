package terms

import (
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"

	"walletgate/internal/consentflow/models"
)

// Equal reports whole-object equality between two terms.
// A nil shared list and an empty one are different values.
func Equal(a, b models.Terms) bool {
	return cmp.Equal(a, b)
}

// IsUpdated reports whether edited terms differ from the last-saved terms and need a save.
// Any structural change counts.
func IsUpdated(saved, edited models.Terms) bool {
	return !Equal(saved, edited)
}

// Diff returns a human-readable description of what changed, or "" when equal.
func Diff(saved, edited models.Terms) string {
	return cmp.Diff(saved, edited)
}

// Clone returns a deep copy so edits never alias the source terms.
func Clone(t models.Terms) models.Terms {
	out := models.Terms{
		Read: models.TermsRead{
			Anonymize: t.Read.Anonymize,
			Credentials: models.TermsReadCredentials{
				ShareAll: clonePtr(t.Read.Credentials.ShareAll),
				Sharing:  clonePtr(t.Read.Credentials.Sharing),
			},
			Personal: maps.Clone(t.Read.Personal),
		},
		Write: models.TermsWrite{
			Credentials: models.TermsWriteCredentials{
				Categories: maps.Clone(t.Write.Credentials.Categories),
			},
			Personal: maps.Clone(t.Write.Personal),
		},
		DeniedWriters: slices.Clone(t.DeniedWriters),
	}
	if t.Read.Credentials.Categories != nil {
		out.Read.Credentials.Categories = make(map[string]models.Term, len(t.Read.Credentials.Categories))
		for name, term := range t.Read.Credentials.Categories {
			term.Shared = slices.Clone(term.Shared)
			out.Read.Credentials.Categories[name] = term
		}
	}
	return out
}

func clonePtr(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
