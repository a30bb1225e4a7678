package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgate/internal/consentflow/models"
)

func sampleTerms() models.Terms {
	contract := contractFromCategories(map[string]models.Permission{
		"Achievement": {Required: true},
		"Badge":       {Required: false},
	})
	contract.Read.Personal["name"] = models.Permission{Required: true}
	contract.Write.Credentials.Categories["Course"] = models.Permission{Required: false}
	return MinimumTerms(contract, models.User{Name: "Grace"})
}

func TestIsUpdated(t *testing.T) {
	t.Run("toggling a nested field enables save and reverting disables it", func(t *testing.T) {
		initial := sampleTerms()
		edited := Clone(initial)

		badge := edited.Read.Credentials.Categories["Badge"]
		badge.Sharing = true
		edited.Read.Credentials.Categories["Badge"] = badge
		assert.True(t, IsUpdated(initial, edited))

		badge.Sharing = false
		edited.Read.Credentials.Categories["Badge"] = badge
		assert.False(t, IsUpdated(initial, edited))
	})

	t.Run("shared list change counts", func(t *testing.T) {
		initial := sampleTerms()
		edited := Clone(initial)
		ShareCredentials(&edited, "Achievement", "lc:cred:1")

		assert.True(t, IsUpdated(initial, edited))
		assert.Contains(t, Diff(initial, edited), "lc:cred:1")
	})

	t.Run("personal and write edits count", func(t *testing.T) {
		initial := sampleTerms()

		edited := Clone(initial)
		edited.Read.Personal["name"] = ""
		assert.True(t, IsUpdated(initial, edited))

		edited = Clone(initial)
		edited.Write.Credentials.Categories["Course"] = true
		assert.True(t, IsUpdated(initial, edited))
	})

	t.Run("nil and empty shared lists differ", func(t *testing.T) {
		initial := sampleTerms()
		edited := Clone(initial)
		term := edited.Read.Credentials.Categories["Badge"]
		term.Shared = nil
		edited.Read.Credentials.Categories["Badge"] = term

		assert.True(t, IsUpdated(initial, edited))
	})

	t.Run("equal terms produce empty diff", func(t *testing.T) {
		assert.Empty(t, Diff(sampleTerms(), sampleTerms()))
	})
}

func TestCloneDoesNotAlias(t *testing.T) {
	on := true
	original := sampleTerms()
	original.Read.Credentials.ShareAll = &on
	original.DeniedWriters = []string{"did:web:writer"}
	ShareCredentials(&original, "Achievement", "lc:cred:1")

	clone := Clone(original)
	require.True(t, Equal(original, clone))

	ShareCredentials(&clone, "Achievement", "lc:cred:2")
	clone.Read.Personal["name"] = "changed"
	clone.Write.Credentials.Categories["Course"] = true
	*clone.Read.Credentials.ShareAll = false
	clone.DeniedWriters[0] = "did:web:other"

	assert.Equal(t, []string{"lc:cred:1"}, original.Read.Credentials.Categories["Achievement"].Shared)
	assert.Equal(t, "Grace", original.Read.Personal["name"])
	assert.False(t, original.Write.Credentials.Categories["Course"])
	assert.True(t, *original.Read.Credentials.ShareAll)
	assert.Equal(t, "did:web:writer", original.DeniedWriters[0])
}
