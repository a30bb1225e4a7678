package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds HTTP-level Prometheus metrics shared by every route.
type Metrics struct {
	Requests              *prometheus.CounterVec
	EndpointLatency       *prometheus.HistogramVec
	AuthFailures          prometheus.Counter
	GuardianVerifications prometheus.Counter
}

// New registers HTTP collectors with reg, or with the default registry when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "walletgate_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route pattern, method and status",
		}, []string{"endpoint", "method", "status"}),
		// - Latency per endpoint (histogram)
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "walletgate_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_auth_failures_total",
			Help: "Total number of rejected bearer tokens",
		}),
		GuardianVerifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletgate_guardian_verifications_total",
			Help: "Total number of successful guardian verifications",
		}),
	}
}

func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}

func (m *Metrics) IncrementGuardianVerifications() {
	m.GuardianVerifications.Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument counts requests and observes latency keyed by the chi route pattern,
// so path parameters do not explode label cardinality.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		endpoint := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		m.Requests.WithLabelValues(endpoint, r.Method, strconv.Itoa(rec.status)).Inc()
		m.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
	})
}
