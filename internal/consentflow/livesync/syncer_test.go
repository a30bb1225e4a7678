package livesync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"walletgate/internal/consentflow/metrics"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
	"walletgate/internal/wallet/mocks"
)

const (
	ownerDID = "did:web:app.example.com"
	termsURI = "lc:terms:1"
)

type SyncerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	network *mocks.MockConsentNetwork
	index   *mocks.MockCredentialIndex
	metrics *metrics.Metrics
	now     time.Time
	syncer  *Syncer
}

func TestSyncerSuite(t *testing.T) {
	suite.Run(t, new(SyncerSuite))
}

func (s *SyncerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.network = mocks.NewMockConsentNetwork(s.ctrl)
	s.index = mocks.NewMockCredentialIndex(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.syncer = NewSyncer(s.network, s.index,
		WithSyncMetrics(s.metrics),
		WithSyncLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *SyncerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func consented(t models.Terms) models.ConsentedContract {
	oneTime := false
	return models.ConsentedContract{
		Contract:  models.ContractDetails{URI: "lc:contract:1", Owner: models.Profile{DID: ownerDID}},
		Terms:     t,
		URI:       termsURI,
		ExpiresAt: "2027-01-01T00:00:00Z",
		OneTime:   &oneTime,
	}
}

func (s *SyncerSuite) expectSharedWithOwner(uris ...string) {
	s.index.EXPECT().Page(gomock.Any(), holder, "", OwnerPageSize).Return(wallet.IndexPage{
		Records: []wallet.CredentialRecord{{URI: "lc:src", SharedURIs: map[string][]string{ownerDID: uris}}},
	}, nil)
}

func (s *SyncerSuite) TestSharesOnlyNewURIsForLiveCategories() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{"lc:shared:1"}}
	t.Read.Credentials.Categories["Badge"] = models.Term{ShareAll: false, Sharing: true, Shared: []string{}}

	s.expectSharedWithOwner("lc:shared:1")
	s.index.EXPECT().ShareWithOwner(gomock.Any(), holder, ownerDID, "lc:cred:1", "Achievement").Return("lc:shared:1", nil)
	s.index.EXPECT().ShareWithOwner(gomock.Any(), holder, ownerDID, "lc:cred:2", "Achievement").Return("lc:shared:2", nil)
	s.network.EXPECT().SyncCredentialsToContract(gomock.Any(), holder, termsURI, map[string][]string{
		"Achievement": {"lc:shared:2"},
	}).Return(nil)

	res, err := s.syncer.SyncContracts(context.Background(), holder, map[string][]string{
		"Achievement": {"lc:cred:1", "lc:cred:2"},
		"Badge":       {"lc:cred:3"},
	}, []models.ConsentedContract{consented(t)})

	s.Require().NoError(err)
	s.Equal(SyncResult{Contracts: 1, Synced: 1}, res)
	s.Equal(Progress{Total: 1, Completed: 1}, s.syncer.Progress())
	s.Equal(1.0, promtest.ToFloat64(s.metrics.SyncedCredentials))
}

func (s *SyncerSuite) TestExpiredShareUntilIsSkipped() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{
		ShareAll: true, Sharing: true, Shared: []string{}, ShareUntil: "2026-02-01T00:00:00Z",
	}

	s.expectSharedWithOwner()

	res, err := s.syncer.SyncContracts(context.Background(), holder, map[string][]string{
		"Achievement": {"lc:cred:1"},
	}, []models.ConsentedContract{consented(t)})

	s.Require().NoError(err)
	s.Equal(SyncResult{Contracts: 1}, res)
}

func (s *SyncerSuite) TestPrunesStaleURIsBeforeSync() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{"lc:shared:1", "lc:gone"}}

	s.expectSharedWithOwner("lc:shared:1")
	s.network.EXPECT().UpdateTerms(gomock.Any(), holder, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u wallet.TermsUpdate) error {
			s.Equal(termsURI, u.TermsURI)
			s.Equal("2027-01-01T00:00:00Z", u.ExpiresAt)
			s.False(u.OneTime)
			s.Equal([]string{"lc:shared:1"}, u.Terms.Read.Credentials.Categories["Achievement"].Shared)
			return nil
		})
	s.index.EXPECT().ShareWithOwner(gomock.Any(), holder, ownerDID, "lc:cred:9", "Achievement").Return("lc:gone", nil)
	s.network.EXPECT().SyncCredentialsToContract(gomock.Any(), holder, termsURI, map[string][]string{
		"Achievement": {"lc:gone"},
	}).Return(nil)

	res, err := s.syncer.SyncContracts(context.Background(), holder, map[string][]string{
		"Achievement": {"lc:cred:9"},
	}, []models.ConsentedContract{consented(t)})

	s.Require().NoError(err)
	s.Equal(SyncResult{Contracts: 1, Pruned: 1, Synced: 1}, res)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.PrunedURIs))
}

func (s *SyncerSuite) TestFailureAbortsRunWithContext() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{}}
	boom := errors.New("network down")

	s.expectSharedWithOwner()
	s.index.EXPECT().ShareWithOwner(gomock.Any(), holder, ownerDID, "lc:cred:1", "Achievement").Return("lc:shared:1", nil)
	s.network.EXPECT().SyncCredentialsToContract(gomock.Any(), holder, termsURI, gomock.Any()).Return(boom)

	second := consented(t)
	second.URI = "lc:terms:2"

	_, err := s.syncer.SyncContracts(context.Background(), holder, map[string][]string{
		"Achievement": {"lc:cred:1"},
	}, []models.ConsentedContract{consented(t), second})

	s.Require().Error(err)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), ownerDID)
	s.Contains(err.Error(), termsURI)

	progress := s.syncer.Progress()
	s.Equal(2, progress.Total)
	s.Equal(0, progress.Completed)
	s.False(progress.Running)
	s.Contains(progress.LastError, "network down")
	s.Equal(1.0, promtest.ToFloat64(s.metrics.SyncRuns.WithLabelValues("error")))
}

func TestSyncEligible(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	live := models.Term{ShareAll: true, Sharing: true}

	assert.True(t, SyncEligible(live, now))
	assert.False(t, SyncEligible(models.Term{ShareAll: true}, now))
	assert.False(t, SyncEligible(models.Term{Sharing: true}, now))

	future := live
	future.ShareUntil = "2026-04-01T00:00:00Z"
	assert.True(t, SyncEligible(future, now))

	past := live
	past.ShareUntil = "2026-02-01T00:00:00.000Z"
	assert.False(t, SyncEligible(past, now))

	unparsable := live
	unparsable.ShareUntil = "2099-01-01"
	assert.True(t, SyncEligible(unparsable, now))
}
