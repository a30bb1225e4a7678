package livesync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"walletgate/internal/consentflow/metrics"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
	"walletgate/pkg/platform/tracer"
)

// SyncResult summarises one SyncContracts run.
type SyncResult struct {
	Contracts int `json:"contracts"`
	Pruned    int `json:"pruned"`
	Synced    int `json:"synced"`
}

// Syncer pushes a holder's credentials to the contracts they consented to.
type Syncer struct {
	network  wallet.ConsentNetwork
	index    wallet.CredentialIndex
	tracer   tracer.Tracer
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	progress progressTracker
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithSyncTracer sets the tracer used for sync spans.
func WithSyncTracer(t tracer.Tracer) SyncerOption {
	return func(s *Syncer) {
		s.tracer = t
	}
}

// WithSyncMetrics sets the metrics instance.
func WithSyncMetrics(m *metrics.Metrics) SyncerOption {
	return func(s *Syncer) {
		s.metrics = m
	}
}

// WithSyncLogger sets the logger.
func WithSyncLogger(logger *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.logger = logger
	}
}

// WithClock overrides the clock used to evaluate shareUntil.
func WithClock(now func() time.Time) SyncerOption {
	return func(s *Syncer) {
		s.now = now
	}
}

func NewSyncer(network wallet.ConsentNetwork, index wallet.CredentialIndex, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		network: network,
		index:   index,
		tracer:  tracer.NewNoop(),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Progress returns a snapshot of the current or most recent run.
func (s *Syncer) Progress() Progress {
	return s.progress.snapshot()
}

// SyncContracts runs the two sync steps for every consented contract, one contract at a time:
// shared URIs the holder no longer shares with the owner are pruned from the terms, then
// credentials from recordsByCategory are shared into every category that is live and not
// past its shareUntil. The first failure aborts the run.
func (s *Syncer) SyncContracts(
	ctx context.Context,
	holderDID string,
	recordsByCategory map[string][]string,
	contracts []models.ConsentedContract,
) (_ SyncResult, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSyncContracts, tracer.Int(tracer.AttrContracts, len(contracts)))
	s.progress.start(len(contracts))
	defer func() {
		s.progress.finish(err)
		span.End(err)
		if s.metrics != nil {
			if err != nil {
				s.metrics.IncrementSyncRuns("error")
			} else {
				s.metrics.IncrementSyncRuns("success")
			}
		}
	}()

	s.logger.InfoContext(ctx, "consent sync starting",
		"contracts", len(contracts),
		"categories", len(recordsByCategory),
	)

	var result SyncResult
	for _, contract := range contracts {
		pruned, synced, cerr := s.syncContract(ctx, holderDID, recordsByCategory, contract)
		if cerr != nil {
			return result, cerr
		}
		result.Contracts++
		result.Pruned += pruned
		result.Synced += synced
		s.progress.completed()
	}
	return result, nil
}

func (s *Syncer) syncContract(
	ctx context.Context,
	holderDID string,
	recordsByCategory map[string][]string,
	contract models.ConsentedContract,
) (pruned, synced int, err error) {
	ownerDID := contract.Contract.Owner.DID
	termsURI := contract.URI
	s.progress.current(ownerDID)

	ctx, span := s.tracer.Start(ctx, tracer.SpanSyncContract,
		tracer.String(tracer.AttrOwnerDID, tracer.HashDID(ownerDID)),
		tracer.String(tracer.AttrTermsURI, termsURI),
	)
	defer func() { span.End(err) }()

	current := contract.Terms
	valid, err := SharedWithOwner(ctx, s.index, holderDID, ownerDID)
	if err != nil {
		return 0, 0, s.wrap(err, "prune", ownerDID, termsURI)
	}
	next, removed := PruneStale(contract.Terms, valid)
	if removed > 0 {
		update := wallet.TermsUpdate{TermsURI: termsURI, Terms: next, ExpiresAt: contract.ExpiresAt}
		if contract.OneTime != nil {
			update.OneTime = *contract.OneTime
		}
		if err := s.network.UpdateTerms(ctx, holderDID, update); err != nil {
			return 0, 0, s.wrap(err, "prune", ownerDID, termsURI)
		}
		current = next
		span.SetAttributes(tracer.Int(tracer.AttrRemoved, removed))
		s.logger.InfoContext(ctx, "pruned stale shared uris",
			"owner_did", ownerDID,
			"terms_uri", termsURI,
			"removed", removed,
		)
		if s.metrics != nil {
			s.metrics.AddPruned(removed)
		}
	}

	categoryMap, err := s.shareNew(ctx, holderDID, ownerDID, current, recordsByCategory)
	if err != nil {
		return removed, 0, s.wrap(err, "share", ownerDID, termsURI)
	}
	if len(categoryMap) == 0 {
		s.logger.DebugContext(ctx, "no credentials to sync for contract",
			"owner_did", ownerDID,
			"terms_uri", termsURI,
		)
		return removed, 0, nil
	}

	if err := s.network.SyncCredentialsToContract(ctx, holderDID, termsURI, categoryMap); err != nil {
		return removed, 0, s.wrap(err, "sync", ownerDID, termsURI)
	}
	for _, uris := range categoryMap {
		synced += len(uris)
	}
	if s.metrics != nil {
		s.metrics.AddSynced(synced)
	}
	s.logger.InfoContext(ctx, "synced credentials to contract",
		"owner_did", ownerDID,
		"terms_uri", termsURI,
		"credentials", synced,
	)
	return removed, synced, nil
}

// shareNew shares every source credential of each eligible category with the owner and
// returns the shared URIs the terms do not list yet, keyed by category.
func (s *Syncer) shareNew(
	ctx context.Context,
	holderDID, ownerDID string,
	t models.Terms,
	recordsByCategory map[string][]string,
) (map[string][]string, error) {
	now := s.now()
	var (
		mu     sync.Mutex
		result = make(map[string][]string)
	)

	g, gctx := errgroup.WithContext(ctx)
	for category, sources := range recordsByCategory {
		term, ok := t.Read.Credentials.Categories[category]
		if !ok || !SyncEligible(term, now) || len(sources) == 0 {
			continue
		}
		g.Go(func() error {
			shared := make([]string, len(sources))
			sg, sctx := errgroup.WithContext(gctx)
			for i, uri := range sources {
				sg.Go(func() error {
					out, err := s.index.ShareWithOwner(sctx, holderDID, ownerDID, uri, category)
					if err != nil {
						s.logger.ErrorContext(sctx, "share uri failed",
							"owner_did", ownerDID,
							"category", category,
							"source_uri", uri,
							"error", err,
						)
						return err
					}
					shared[i] = out
					return nil
				})
			}
			if err := sg.Wait(); err != nil {
				return err
			}

			var fresh []string
			for _, uri := range shared {
				if uri != "" && !slices.Contains(term.Shared, uri) && !slices.Contains(fresh, uri) {
					fresh = append(fresh, uri)
				}
			}
			if len(fresh) > 0 {
				mu.Lock()
				result[category] = fresh
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// SyncEligible reports whether new credentials should be pushed into a category.
// shareUntil is an RFC 3339 timestamp; values that do not parse are compared as strings
// against now in the same format.
func SyncEligible(term models.Term, now time.Time) bool {
	if !term.ShareAll || !term.Sharing {
		return false
	}
	if term.ShareUntil == "" {
		return true
	}
	if until, err := time.Parse(time.RFC3339, term.ShareUntil); err == nil {
		return until.After(now)
	}
	return term.ShareUntil > now.UTC().Format(time.RFC3339)
}

func (s *Syncer) wrap(err error, step, ownerDID, termsURI string) error {
	return dErrors.Wrap(err, wallet.ErrorCode(err),
		fmt.Sprintf("%s failed for owner=%s termsUri=%s: %v", step, ownerDID, termsURI, err))
}
