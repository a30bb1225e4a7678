// Package livesync keeps "share all" categories of consent-flow terms in step with the
// holder's credential index.
//
// Reconciler refreshes the shared list of every live category before terms are shown or
// saved. Syncer is the background pass over already-consented contracts: it prunes shared
// URIs the holder no longer shares and pushes newly issued credentials to contract owners.
package livesync

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"walletgate/internal/consentflow/metrics"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
	"walletgate/pkg/platform/tracer"
)

// DefaultPageSize matches the page size of the network's category query.
const DefaultPageSize = 15

// ReconcileResult is the outcome of one reconcile run.
type ReconcileResult struct {
	Terms models.Terms
	// Changed is false when every live category already listed exactly the indexed URIs.
	Changed bool
	// Truncated lists categories whose query returned a full page; their shared list may
	// be missing credentials beyond the first page.
	Truncated []string
}

// Reconciler replaces the shared list of every shareAll category with the URIs currently
// indexed for that category.
type Reconciler struct {
	index    wallet.CredentialIndex
	pageSize int
	tracer   tracer.Tracer
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPageSize sets the per-category query limit. Values <= 0 keep the default.
func WithPageSize(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithTracer sets the tracer used for reconcile spans.
func WithTracer(t tracer.Tracer) Option {
	return func(r *Reconciler) {
		r.tracer = t
	}
}

// WithMetrics sets the metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

func NewReconciler(index wallet.CredentialIndex, opts ...Option) *Reconciler {
	r := &Reconciler{
		index:    index,
		pageSize: DefaultPageSize,
		tracer:   tracer.NewNoop(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile queries every shareAll category concurrently and returns a copy of t with
// each live category's shared list replaced by the indexed URIs.
//
// t is never mutated. A single failed query fails the whole run and no partial terms
// are returned. Categories without shareAll are left exactly as they were.
func (r *Reconciler) Reconcile(ctx context.Context, holderDID string, t models.Terms) (_ ReconcileResult, err error) {
	live := LiveCategories(t)
	if len(live) == 0 {
		return ReconcileResult{Terms: terms.Clone(t)}, nil
	}

	start := time.Now()
	ctx, span := r.tracer.Start(ctx, tracer.SpanReconcile,
		tracer.Int(tracer.AttrCategories, len(live)),
		tracer.String(tracer.AttrOwnerDID, tracer.HashDID(holderDID)),
	)
	defer func() {
		span.End(err)
		r.observe(err, time.Since(start))
	}()

	uris := make([][]string, len(live))
	full := make([]bool, len(live))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range live {
		g.Go(func() error {
			cctx, cspan := r.tracer.Start(gctx, tracer.SpanReconcileCategory, tracer.String(tracer.AttrCategory, category))
			records, qerr := r.index.ByCategory(cctx, holderDID, category, r.pageSize)
			if qerr != nil {
				cspan.End(qerr)
				return dErrors.Wrap(qerr, wallet.ErrorCode(qerr), fmt.Sprintf("failed to fetch credentials for category %s", category))
			}
			uris[i] = recordURIs(records)
			full[i] = len(records) >= r.pageSize
			cspan.SetAttributes(
				tracer.Int(tracer.AttrURICount, len(uris[i])),
				tracer.Bool(tracer.AttrTruncated, full[i]),
			)
			cspan.End(nil)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{Terms: terms.Clone(t)}
	for i, category := range live {
		term := result.Terms.Read.Credentials.Categories[category]
		if !slices.Equal(term.Shared, uris[i]) {
			result.Changed = true
		}
		term.Shared = uris[i]
		result.Terms.Read.Credentials.Categories[category] = term

		if full[i] {
			result.Truncated = append(result.Truncated, category)
			r.logger.WarnContext(ctx, "live sync category returned a full page, shared list may be incomplete",
				"category", category,
				"page_size", r.pageSize,
			)
			if r.metrics != nil {
				r.metrics.IncrementTruncated(category)
			}
		}
	}
	return result, nil
}

func (r *Reconciler) observe(err error, elapsed time.Duration) {
	if r.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.metrics.ObserveReconcile(result, elapsed.Seconds())
}

// LiveCategories returns the sorted names of read categories with shareAll set.
func LiveCategories(t models.Terms) []string {
	var live []string
	for name, term := range t.Read.Credentials.Categories {
		if term.ShareAll {
			live = append(live, name)
		}
	}
	slices.Sort(live)
	return live
}

// recordURIs skips records without a URI so they never become blank shared entries.
func recordURIs(records []wallet.CredentialRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.URI != "" {
			out = append(out, rec.URI)
		}
	}
	return out
}
