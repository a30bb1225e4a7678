package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"walletgate/internal/appstore"
	appstorehandler "walletgate/internal/appstore/handler"
	"walletgate/internal/audit"
	audithandler "walletgate/internal/audit/handler"
	consenthandler "walletgate/internal/consentflow/handler"
	"walletgate/internal/consentflow/livesync"
	flowmetrics "walletgate/internal/consentflow/metrics"
	"walletgate/internal/consentflow/service"
	"walletgate/internal/guardian"
	guardianhandler "walletgate/internal/guardian/handler"
	guardianstore "walletgate/internal/guardian/store"
	jwttoken "walletgate/internal/jwt_token"
	"walletgate/internal/platform/config"
	"walletgate/internal/platform/health"
	"walletgate/internal/platform/logger"
	"walletgate/internal/platform/metrics"
	"walletgate/internal/platform/redis"
	httptransport "walletgate/internal/transport/http"
	"walletgate/internal/wallet"
	walletclient "walletgate/internal/wallet/client"
	"walletgate/internal/wallet/memory"
	"walletgate/pkg/platform/circuit"
	"walletgate/pkg/platform/tracer"
)

const (
	shutdownTimeout   = 10 * time.Second
	sweepInterval     = time.Minute
	poolStatsInterval = 15 * time.Second
)

// walletPorts is the wallet network as seen by the services.
type walletPorts interface {
	wallet.ConsentNetwork
	wallet.CredentialIndex
	wallet.AppStore
}

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing walletgate",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"wallet", walletMode(cfg),
		"redis", cfg.Redis.URL != "",
		"admins", len(cfg.AdminDIDs),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.New(reg)
	flowMetrics := flowmetrics.New(reg)
	healthHandler := health.New(cfg.Environment)

	ports := buildWallet(cfg, healthHandler)

	redisClient, err := redis.New(ctx, cfg.Redis, reg)
	if err != nil {
		log.Error("failed to initialise redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", redisClient.Health)
		go redisClient.ReportPoolStats(ctx, poolStatsInterval, log)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		}()
	}

	verifications := buildVerificationStore(ctx, redisClient, log)

	var auditOpts []audit.PublisherOption
	auditOpts = append(auditOpts, audit.WithPublisherLogger(log))
	if cfg.AuditBuffer > 0 {
		auditOpts = append(auditOpts, audit.WithAsyncBuffer(cfg.AuditBuffer))
	}
	auditor := audit.NewPublisher(buildAuditStore(redisClient), auditOpts...)
	defer auditor.Close()

	pins := guardian.NewBcryptPinStore(cfg.Guardian.BcryptCost)
	gate := guardian.New(pins, verifications,
		guardian.WithTTL(cfg.Guardian.VerificationTTL),
		guardian.WithLogger(log),
		guardian.WithOnVerified(func(ctx context.Context, guardianDID string) {
			httpMetrics.IncrementGuardianVerifications()
			log.InfoContext(ctx, "guardian verified", "guardian_did", guardianDID)
		}),
	)

	tr := tracer.NewOTel()
	consentSvc := service.NewService(ports, ports, auditor, log,
		service.WithMetrics(flowMetrics),
		service.WithGate(gate),
		service.WithReconciler(livesync.NewReconciler(ports,
			livesync.WithPageSize(cfg.Wallet.PageSize),
			livesync.WithTracer(tr),
			livesync.WithMetrics(flowMetrics),
			livesync.WithLogger(log),
		)),
		service.WithSyncer(livesync.NewSyncer(ports, ports,
			livesync.WithSyncTracer(tr),
			livesync.WithSyncMetrics(flowMetrics),
			livesync.WithSyncLogger(log),
		)),
	)
	storeSvc := appstore.NewService(ports, log,
		appstore.WithAdmins(cfg.AdminDIDs...),
		appstore.WithAuditor(auditor),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:      log,
		Validator:   jwttoken.NewJWTServiceAdapter(jwtService),
		AdminDIDs:   cfg.AdminDIDs,
		Metrics:     httpMetrics,
		Gatherer:    reg,
		Health:      healthHandler,
		ConsentFlow: consenthandler.New(consentSvc, log),
		Guardian:    guardianhandler.New(pins, gate, log),
		AppStore:    appstorehandler.New(storeSvc, log),
		Audit:       audithandler.New(auditor, log),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return
	}
	log.Info("server stopped")
}

func walletMode(cfg config.Server) string {
	if cfg.Wallet.BaseURL == "" {
		return "memory"
	}
	return "remote"
}

// buildWallet returns the remote wallet client, or an in-memory wallet when no
// base URL is configured. The remote client's circuit state feeds readiness.
func buildWallet(cfg config.Server, healthHandler *health.Handler) walletPorts {
	if cfg.Wallet.BaseURL == "" {
		return memory.New()
	}
	breaker := circuit.New("wallet",
		circuit.WithFailureThreshold(cfg.Wallet.BreakerThreshold),
		circuit.WithCooldown(cfg.Wallet.BreakerCooldown),
	)
	healthHandler.RegisterCheck("wallet", breaker.Check)
	return walletclient.New(walletclient.Config{
		BaseURL: cfg.Wallet.BaseURL,
		APIKey:  cfg.Wallet.APIKey,
		Timeout: cfg.Wallet.Timeout,
		Breaker: breaker,
	})
}

// buildVerificationStore picks Redis when configured so verifications survive
// restarts and are shared across instances; otherwise an in-memory store swept
// in the background.
func buildVerificationStore(ctx context.Context, client *redis.Client, log *slog.Logger) guardian.VerificationStore {
	if client == nil {
		mem := guardianstore.NewMemory()
		go sweep(ctx, mem, log)
		return mem
	}
	return guardianstore.NewRedis(client.Client)
}

func buildAuditStore(client *redis.Client) audit.Store {
	if client == nil {
		return audit.NewInMemoryStore()
	}
	return audit.NewRedisStore(client.Client, audit.DefaultRetention)
}

func sweep(ctx context.Context, store *guardianstore.MemoryStore, log *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				log.Debug("swept expired guardian verifications", "removed", n)
			}
		}
	}
}
