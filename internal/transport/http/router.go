package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appstorehandler "walletgate/internal/appstore/handler"
	audithandler "walletgate/internal/audit/handler"
	consenthandler "walletgate/internal/consentflow/handler"
	guardianhandler "walletgate/internal/guardian/handler"
	"walletgate/internal/platform/health"
	"walletgate/internal/platform/metrics"
	"walletgate/internal/platform/middleware"
	"walletgate/pkg/validation"
)

const defaultRequestTimeout = 30 * time.Second

// RouterConfig carries everything the router mounts. Nil handlers are skipped.
type RouterConfig struct {
	Logger         *slog.Logger
	Validator      middleware.JWTValidator
	AdminDIDs      []string
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Health         *health.Handler
	ConsentFlow    *consenthandler.Handler
	Guardian       *guardianhandler.Handler
	AppStore       *appstorehandler.Handler
	Audit          *audithandler.Handler
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware.
//
// Health and metrics are unauthenticated. Everything else requires a bearer token;
// app-store review routes additionally require an admin DID.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Instrument)
	}
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.MaxBodySize(validation.MaxBodySize))
	r.Use(middleware.ContentTypeJSON)

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	var authOpts []middleware.AuthOption
	if cfg.Metrics != nil {
		authOpts = append(authOpts, middleware.WithAuthFailureHook(cfg.Metrics.IncrementAuthFailures))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.Validator, logger, authOpts...))

		if cfg.ConsentFlow != nil {
			cfg.ConsentFlow.Register(r)
		}
		if cfg.Guardian != nil {
			cfg.Guardian.Register(r)
		}
		if cfg.Audit != nil {
			cfg.Audit.Register(r)
		}
		if cfg.AppStore != nil {
			cfg.AppStore.Register(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.AdminDIDs, logger))
				cfg.AppStore.RegisterAdmin(r)
			})
		}
	})

	return r
}
