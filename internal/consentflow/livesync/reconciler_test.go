package livesync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"walletgate/internal/consentflow/metrics"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/wallet"
	"walletgate/internal/wallet/mocks"
	dErrors "walletgate/pkg/domain-errors"
)

const holder = "did:key:z6MkHolder"

type ReconcilerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	index   *mocks.MockCredentialIndex
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.index = mocks.NewMockCredentialIndex(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ReconcilerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReconcilerSuite) reconciler(opts ...Option) *Reconciler {
	opts = append([]Option{WithMetrics(s.metrics), WithLogger(s.logger)}, opts...)
	return NewReconciler(s.index, opts...)
}

func liveTerms() models.Terms {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{"lc:old"}}
	t.Read.Credentials.Categories["Course"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{}}
	t.Read.Credentials.Categories["Badge"] = models.Term{Sharing: true, Shared: []string{"lc:badge:1"}}
	return t
}

func records(uris ...string) []wallet.CredentialRecord {
	out := make([]wallet.CredentialRecord, 0, len(uris))
	for _, uri := range uris {
		out = append(out, wallet.CredentialRecord{URI: uri})
	}
	return out
}

func (s *ReconcilerSuite) TestReplacesSharedForLiveCategoriesOnly() {
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Achievement", DefaultPageSize).
		Return(records("lc:ach:1", "lc:ach:2"), nil)
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Course", DefaultPageSize).
		Return(records("lc:course:1", ""), nil)

	input := liveTerms()
	before := terms.Clone(input)

	res, err := s.reconciler().Reconcile(context.Background(), holder, input)
	s.Require().NoError(err)

	s.True(res.Changed)
	s.Empty(res.Truncated)
	s.Equal([]string{"lc:ach:1", "lc:ach:2"}, res.Terms.Read.Credentials.Categories["Achievement"].Shared)
	s.Equal([]string{"lc:course:1"}, res.Terms.Read.Credentials.Categories["Course"].Shared)
	s.Equal([]string{"lc:badge:1"}, res.Terms.Read.Credentials.Categories["Badge"].Shared)
	s.True(terms.Equal(before, input), "input terms must not be mutated")
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ReconcileRuns.WithLabelValues("success")))
}

func (s *ReconcilerSuite) TestUnchangedWhenIndexMatches() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Achievement"] = models.Term{ShareAll: true, Sharing: true, Shared: []string{"lc:1"}}
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Achievement", DefaultPageSize).Return(records("lc:1"), nil)

	res, err := s.reconciler().Reconcile(context.Background(), holder, t)
	s.Require().NoError(err)
	s.False(res.Changed)
	s.False(terms.IsUpdated(t, res.Terms))
}

func (s *ReconcilerSuite) TestNoLiveCategoriesSkipsIndex() {
	t := models.NewTerms()
	t.Read.Credentials.Categories["Badge"] = models.Term{Shared: []string{}}

	res, err := s.reconciler().Reconcile(context.Background(), holder, t)
	s.Require().NoError(err)
	s.False(res.Changed)
	s.True(terms.Equal(t, res.Terms))
}

func (s *ReconcilerSuite) TestSingleFailureFailsWholeRun() {
	boom := errors.New("index offline")
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Achievement", DefaultPageSize).Return(nil, boom)
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Course", DefaultPageSize).
		Return(records("lc:course:1"), nil).MaxTimes(1)

	input := liveTerms()
	before := terms.Clone(input)

	res, err := s.reconciler().Reconcile(context.Background(), holder, input)
	s.Require().Error(err)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "Achievement")
	s.Nil(res.Terms.Read.Credentials.Categories, "no partial terms on failure")
	s.True(terms.Equal(before, input))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ReconcileRuns.WithLabelValues("error")))
}

func (s *ReconcilerSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.index.EXPECT().ByCategory(gomock.Any(), holder, gomock.Any(), DefaultPageSize).
		DoAndReturn(func(ctx context.Context, _, _ string, _ int) ([]wallet.CredentialRecord, error) {
			return nil, ctx.Err()
		}).MinTimes(1).MaxTimes(2)

	_, err := s.reconciler().Reconcile(ctx, holder, liveTerms())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeCancelled))
}

func (s *ReconcilerSuite) TestFullPageIsFlaggedTruncated() {
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Achievement", 2).Return(records("lc:1", "lc:2"), nil)
	s.index.EXPECT().ByCategory(gomock.Any(), holder, "Course", 2).Return(records("lc:3"), nil)

	res, err := s.reconciler(WithPageSize(2)).Reconcile(context.Background(), holder, liveTerms())
	s.Require().NoError(err)
	s.Equal([]string{"Achievement"}, res.Truncated)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.TruncatedCategories.WithLabelValues("Achievement")))
	s.Equal(0.0, promtest.ToFloat64(s.metrics.TruncatedCategories.WithLabelValues("Course")))
}

func (s *ReconcilerSuite) TestLiveCategoriesSorted() {
	s.Equal([]string{"Achievement", "Course"}, LiveCategories(liveTerms()))
	s.Empty(LiveCategories(models.NewTerms()))
}
