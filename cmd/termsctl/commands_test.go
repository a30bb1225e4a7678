package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgate/internal/consentflow/models"
	jwttoken "walletgate/internal/jwt_token"
)

const contractYAML = `
read:
  personal:
    name:
      required: true
    email:
      required: false
  credentials:
    categories:
      Achievement:
        required: true
      Badge:
        required: false
write:
  personal: {}
  credentials:
    categories:
      Achievement:
        required: true
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTermsFile(t *testing.T, name string, terms models.Terms) string {
	t.Helper()
	raw, err := json.Marshal(terms)
	require.NoError(t, err)
	return writeFile(t, name, string(raw))
}

func TestInit(t *testing.T) {
	contract := writeFile(t, "contract.yaml", contractYAML)

	stdout, _, err := run(t, "init", "--contract", contract, "--did", "did:key:ada", "--name", "Ada")
	require.NoError(t, err)

	var terms models.Terms
	require.NoError(t, json.Unmarshal([]byte(stdout), &terms))
	assert.Equal(t, "Ada", terms.Read.Personal["name"])
	assert.Equal(t, "", terms.Read.Personal["email"])
	assert.True(t, terms.Read.Credentials.Categories["Achievement"].Sharing)
	assert.False(t, terms.Read.Credentials.Categories["Badge"].Sharing)
	assert.True(t, terms.Write.Credentials.Categories["Achievement"])
}

func TestInitRequiresDID(t *testing.T) {
	contract := writeFile(t, "contract.yaml", contractYAML)
	_, _, err := run(t, "init", "--contract", contract)
	assert.ErrorContains(t, err, "--did is required")
}

func TestDiff(t *testing.T) {
	saved := models.NewTerms()
	saved.Read.Credentials.Categories["Badge"] = models.Term{Shared: []string{"lc:a"}}
	savedPath := writeTermsFile(t, "saved.json", saved)

	t.Run("unchanged", func(t *testing.T) {
		stdout, _, err := run(t, "diff", savedPath, savedPath, "--exit-code")
		require.NoError(t, err)
		assert.Equal(t, "unchanged\n", stdout)
	})

	t.Run("updated", func(t *testing.T) {
		edited := models.NewTerms()
		edited.Read.Credentials.Categories["Badge"] = models.Term{Sharing: true, Shared: []string{"lc:a"}}
		editedPath := writeTermsFile(t, "edited.json", edited)

		stdout, _, err := run(t, "diff", savedPath, editedPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "updated\n"))
		assert.Contains(t, stdout, "Sharing")

		_, _, err = run(t, "diff", savedPath, editedPath, "--exit-code")
		assert.ErrorIs(t, err, errTermsUpdated)
	})
}

func TestPrune(t *testing.T) {
	terms := models.NewTerms()
	terms.Read.Credentials.Categories["Badge"] = models.Term{Sharing: true, Shared: []string{"lc:keep", "lc:gone"}}
	termsPath := writeTermsFile(t, "terms.json", terms)
	valid := writeFile(t, "valid.txt", "# still in the wallet\nlc:keep\n\n")

	stdout, stderr, err := run(t, "prune", termsPath, "--valid", valid)
	require.NoError(t, err)
	assert.Equal(t, "pruned 1 stale uri(s)\n", stderr)

	var pruned models.Terms
	require.NoError(t, json.Unmarshal([]byte(stdout), &pruned))
	assert.Equal(t, []string{"lc:keep"}, pruned.Read.Credentials.Categories["Badge"].Shared)
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_AUDIENCE", "")

	stdout, _, err := run(t, "token", "--did", "did:key:child", "--profile", "child", "--guardian", "did:key:parent", "--key", "cli-test-key")
	require.NoError(t, err)

	svc := jwttoken.NewJWTService("cli-test-key", "walletgate", "walletgate-api", time.Minute)
	claims, err := svc.ValidateToken(strings.TrimSpace(stdout))
	require.NoError(t, err)
	user := claims.User()
	assert.Equal(t, "did:key:child", user.DID)
	assert.True(t, user.IsChildProfile())
	assert.Equal(t, "did:key:parent", user.GuardianDID)
}
