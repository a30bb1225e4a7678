package service

import (
	"context"
	"log/slog"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/livesync"
	"walletgate/internal/consentflow/metrics"
	"walletgate/internal/guardian"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Gatekeeper

// Gatekeeper runs an action once the session passes the guardian gate.
// Satisfied by *guardian.Gate.
type Gatekeeper interface {
	Guard(ctx context.Context, session guardian.Session, action func(context.Context) error) error
}

type Option func(*Service)

// Service drives one holder's consent-flow session against the wallet network:
// previewing a contract, accepting, editing and withdrawing terms, and syncing
// credentials into live categories.
type Service struct {
	network    wallet.ConsentNetwork
	index      wallet.CredentialIndex
	auditor    *audit.Publisher
	reconciler *livesync.Reconciler
	syncer     *livesync.Syncer
	gate       Gatekeeper
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewService(
	network wallet.ConsentNetwork,
	index wallet.CredentialIndex,
	auditor *audit.Publisher,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	svc := &Service{
		network: network,
		index:   index,
		auditor: auditor,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.reconciler == nil {
		svc.reconciler = livesync.NewReconciler(index,
			livesync.WithLogger(svc.logger),
			livesync.WithMetrics(svc.metrics),
		)
	}
	if svc.syncer == nil {
		svc.syncer = livesync.NewSyncer(network, index,
			livesync.WithSyncLogger(svc.logger),
			livesync.WithSyncMetrics(svc.metrics),
		)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithReconciler replaces the default live-sync reconciler.
func WithReconciler(r *livesync.Reconciler) Option {
	return func(s *Service) {
		s.reconciler = r
	}
}

// WithSyncer replaces the default syncer.
func WithSyncer(syncer *livesync.Syncer) Option {
	return func(s *Service) {
		s.syncer = syncer
	}
}

// WithGate sets the guardian gate. Without one, child profiles cannot accept or withdraw.
func WithGate(g Gatekeeper) Option {
	return func(s *Service) {
		s.gate = g
	}
}

// SyncProgress returns the state of the current or most recent sync run.
func (s *Service) SyncProgress() livesync.Progress {
	return s.syncer.Progress()
}

func (s *Service) guard(ctx context.Context, session guardian.Session, action func(context.Context) error) error {
	if !session.User.IsChildProfile() || session.Skip {
		return action(ctx)
	}
	if s.gate == nil {
		return dErrors.New(dErrors.CodeForbidden, "guardian confirmation is not available")
	}
	return s.gate.Guard(ctx, session, action)
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"error", err,
		)
	}
}

func networkError(err error, msg string) error {
	return dErrors.Wrap(err, wallet.ErrorCode(err), msg)
}

func requireHolder(did string) error {
	if did == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "missing holder context")
	}
	return nil
}

func (s *Service) incrementConsentsAccepted(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementConsentsAccepted(outcome)
	}
}

func (s *Service) incrementTermsUpdated(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementTermsUpdated(outcome)
	}
}

func (s *Service) recordWithdrawal(deleted int) {
	if s.metrics != nil {
		s.metrics.IncrementConsentsWithdrawn()
		s.metrics.AddCredentialsDeleted(deleted)
	}
}
