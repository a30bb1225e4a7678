package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for consent-flow operations.
type Metrics struct {
	ConsentsAccepted   *prometheus.CounterVec
	TermsUpdated       *prometheus.CounterVec
	ConsentsWithdrawn  prometheus.Counter
	CredentialsDeleted prometheus.Counter

	// Live sync
	ReconcileRuns       *prometheus.CounterVec
	ReconcileLatency    prometheus.Histogram
	TruncatedCategories *prometheus.CounterVec
	PrunedURIs          prometheus.Counter
	SyncedCredentials   prometheus.Counter
	SyncRuns            *prometheus.CounterVec
}

// New registers consent-flow collectors with reg, or with the default registry when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ConsentsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_consents_accepted_total",
			Help: "Total number of contract consents, labeled by outcome (accepted, already_consented, rejected, error)",
		}, []string{"outcome"}),
		TermsUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_terms_updates_total",
			Help: "Total number of terms update requests, labeled by outcome (saved, unchanged, rejected, error)",
		}, []string{"outcome"}),
		ConsentsWithdrawn: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_consents_withdrawn_total",
			Help: "Total number of withdrawn consents",
		}),
		CredentialsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_contract_credentials_deleted_total",
			Help: "Total number of contract-issued credential records deleted on withdraw",
		}),
		ReconcileRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_livesync_reconcile_runs_total",
			Help: "Total number of live-sync reconcile runs, labeled by result",
		}, []string{"result"}),
		ReconcileLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletgate_livesync_reconcile_latency_seconds",
			Help:    "Latency of live-sync reconcile runs in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		TruncatedCategories: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_livesync_truncated_categories_total",
			Help: "Categories whose index query returned a full page, so shared may be incomplete",
		}, []string{"category"}),
		PrunedURIs: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_livesync_pruned_uris_total",
			Help: "Shared URIs removed from terms because they are no longer shared",
		}),
		SyncedCredentials: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_livesync_synced_credentials_total",
			Help: "Credentials pushed to contract owners by background sync",
		}),
		SyncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_livesync_sync_runs_total",
			Help: "Total number of background sync runs, labeled by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementConsentsAccepted(outcome string) {
	m.ConsentsAccepted.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementTermsUpdated(outcome string) {
	m.TermsUpdated.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementConsentsWithdrawn() {
	m.ConsentsWithdrawn.Inc()
}

func (m *Metrics) AddCredentialsDeleted(n int) {
	m.CredentialsDeleted.Add(float64(n))
}

func (m *Metrics) ObserveReconcile(result string, seconds float64) {
	m.ReconcileRuns.WithLabelValues(result).Inc()
	m.ReconcileLatency.Observe(seconds)
}

func (m *Metrics) IncrementTruncated(category string) {
	m.TruncatedCategories.WithLabelValues(category).Inc()
}

func (m *Metrics) AddPruned(n int) {
	m.PrunedURIs.Add(float64(n))
}

func (m *Metrics) AddSynced(n int) {
	m.SyncedCredentials.Add(float64(n))
}

func (m *Metrics) IncrementSyncRuns(result string) {
	m.SyncRuns.WithLabelValues(result).Inc()
}
