package terms

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"walletgate/internal/consentflow/models"
	dErrors "walletgate/pkg/domain-errors"
)

// AllReadLive reports whether every read category is sharing with live sync on.
// Terms without read categories count as all-live.
func AllReadLive(t models.Terms) bool {
	for _, term := range t.Read.Credentials.Categories {
		if !term.Sharing || !term.ShareAll {
			return false
		}
	}
	return true
}

// AllWriteEnabled reports whether every write category is granted.
func AllWriteEnabled(t models.Terms) bool {
	for _, on := range t.Write.Credentials.Categories {
		if !on {
			return false
		}
	}
	return true
}

// ToggleAllRead flips the "live sync all" switch in place.
// Turning it off keeps required categories live and leaves sharing untouched for the rest.
func ToggleAllRead(t *models.Terms, contract models.Contract) {
	allLive := AllReadLive(*t)
	for name, term := range t.Read.Credentials.Categories {
		required := contract.Read.Credentials.Categories[name].Required
		term.Sharing = !allLive || term.Sharing || required
		term.ShareAll = !allLive || required
		t.Read.Credentials.Categories[name] = term
	}
}

// ToggleAllWrite flips every write category in place; required categories stay granted.
func ToggleAllWrite(t *models.Terms, contract models.Contract) {
	allOn := AllWriteEnabled(*t)
	for name := range t.Write.Credentials.Categories {
		t.Write.Credentials.Categories[name] = !allOn || contract.Write.Credentials.Categories[name].Required
	}
}

// SetShareAll switches live sync for one category in place.
// Enabling live sync also enables sharing; a required category cannot be switched off.
func SetShareAll(t *models.Terms, contract models.Contract, category string, on bool) {
	term, ok := t.Read.Credentials.Categories[category]
	if !ok {
		term = models.Term{Shared: []string{}}
	}
	if on {
		term.ShareAll = true
		term.Sharing = true
	} else {
		term.ShareAll = contract.Read.Credentials.Categories[category].Required
	}
	t.Read.Credentials.Categories[category] = term
}

// ShareCredentials adds URIs to a category's shared list without duplicates and marks it sharing.
func ShareCredentials(t *models.Terms, category string, uris ...string) {
	term, ok := t.Read.Credentials.Categories[category]
	if !ok {
		term = models.Term{Shared: []string{}}
	}
	for _, uri := range uris {
		if uri != "" && !slices.Contains(term.Shared, uri) {
			term.Shared = append(term.Shared, uri)
		}
	}
	term.Sharing = true
	t.Read.Credentials.Categories[category] = term
}

// EnforceRequired checks the required-permission invariant and returns a validation
// error naming every violated entry.
func EnforceRequired(contract models.Contract, t models.Terms) error {
	var missing []string
	for name, perm := range contract.Read.Credentials.Categories {
		if !perm.Required {
			continue
		}
		if term, ok := t.Read.Credentials.Categories[name]; !ok || !term.Sharing {
			missing = append(missing, "read.credentials."+name)
		}
	}
	for field, perm := range contract.Read.Personal {
		if perm.Required && t.Read.Personal[field] == "" {
			missing = append(missing, "read.personal."+field)
		}
	}
	for name, perm := range contract.Write.Credentials.Categories {
		if perm.Required && !t.Write.Credentials.Categories[name] {
			missing = append(missing, "write.credentials."+name)
		}
	}
	for field, perm := range contract.Write.Personal {
		if perm.Required && !t.Write.Personal[field] {
			missing = append(missing, "write.personal."+field)
		}
	}
	for name, term := range t.Read.Credentials.Categories {
		if term.ShareAll && !term.Sharing {
			missing = append(missing, "read.credentials."+name+".sharing")
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return dErrors.New(dErrors.CodeValidation,
		fmt.Sprintf("terms violate contract requirements: %s", strings.Join(missing, ", ")))
}
