package terms

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"walletgate/internal/consentflow/models"
	dErrors "walletgate/pkg/domain-errors"
)

type TogglesSuite struct {
	suite.Suite
	contract models.Contract
}

func TestTogglesSuite(t *testing.T) {
	suite.Run(t, new(TogglesSuite))
}

func (s *TogglesSuite) SetupTest() {
	s.contract = contractFromCategories(map[string]models.Permission{
		"Achievement": {Required: true},
		"Badge":       {Required: false},
		"Course":      {Required: false},
	})
	s.contract.Write.Credentials.Categories = map[string]models.Permission{
		"ID":         {Required: true},
		"Membership": {Required: false},
	}
}

func (s *TogglesSuite) TestToggleAllRead() {
	t := MinimumTerms(s.contract, models.User{})
	s.False(AllReadLive(t))

	ToggleAllRead(&t, s.contract)
	s.True(AllReadLive(t))
	for _, term := range t.Read.Credentials.Categories {
		s.True(term.ShareAll)
		s.True(term.Sharing)
	}

	ToggleAllRead(&t, s.contract)
	s.False(AllReadLive(t))
	s.True(t.Read.Credentials.Categories["Achievement"].ShareAll, "required category stays live")
	s.False(t.Read.Credentials.Categories["Badge"].ShareAll)
	s.True(t.Read.Credentials.Categories["Badge"].Sharing, "sharing is kept when live sync is switched off")
}

func (s *TogglesSuite) TestToggleAllWrite() {
	t := MinimumTerms(s.contract, models.User{})
	s.False(AllWriteEnabled(t))

	ToggleAllWrite(&t, s.contract)
	s.True(AllWriteEnabled(t))

	ToggleAllWrite(&t, s.contract)
	s.True(t.Write.Credentials.Categories["ID"])
	s.False(t.Write.Credentials.Categories["Membership"])
}

func (s *TogglesSuite) TestSetShareAll() {
	t := MinimumTerms(s.contract, models.User{})

	SetShareAll(&t, s.contract, "Badge", true)
	s.True(t.Read.Credentials.Categories["Badge"].ShareAll)
	s.True(t.Read.Credentials.Categories["Badge"].Sharing)

	SetShareAll(&t, s.contract, "Badge", false)
	s.False(t.Read.Credentials.Categories["Badge"].ShareAll)

	SetShareAll(&t, s.contract, "Achievement", false)
	s.True(t.Read.Credentials.Categories["Achievement"].ShareAll)
}

func (s *TogglesSuite) TestShareCredentialsDeduplicates() {
	t := MinimumTerms(s.contract, models.User{})

	ShareCredentials(&t, "Course", "lc:cred:1", "lc:cred:1", "", "lc:cred:2")
	ShareCredentials(&t, "Course", "lc:cred:2")

	s.Equal([]string{"lc:cred:1", "lc:cred:2"}, t.Read.Credentials.Categories["Course"].Shared)
	s.True(t.Read.Credentials.Categories["Course"].Sharing)
}

func (s *TogglesSuite) TestEnforceRequired() {
	s.Run("minimum terms satisfy the contract", func() {
		s.NoError(EnforceRequired(s.contract, MinimumTerms(s.contract, models.User{})))
	})

	s.Run("disabled required entries are reported", func() {
		t := MinimumTerms(s.contract, models.User{})
		ach := t.Read.Credentials.Categories["Achievement"]
		ach.Sharing = false
		t.Read.Credentials.Categories["Achievement"] = ach
		t.Write.Credentials.Categories["ID"] = false

		err := EnforceRequired(s.contract, t)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "read.credentials.Achievement")
		s.Contains(err.Error(), "write.credentials.ID")
	})

	s.Run("required personal field left empty", func() {
		c := s.contract
		c.Read.Personal = map[string]models.Permission{"email": {Required: true}}

		err := EnforceRequired(c, MinimumTerms(c, models.User{}))
		s.Require().Error(err)
		s.Contains(err.Error(), "read.personal.email")
	})
}
