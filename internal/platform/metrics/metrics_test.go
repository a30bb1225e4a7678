package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/app-store/listings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app-store/listings/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/app-store/listings/{id}", http.MethodGet, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EndpointLatency))
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncrementAuthFailures()
	m.IncrementGuardianVerifications()
	m.IncrementGuardianVerifications()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GuardianVerifications))
}
