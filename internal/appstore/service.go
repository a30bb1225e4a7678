// Package appstore runs the developer portal and store front over the wallet
// network's app-store port: listing lifecycle, admin review, and holder installs.
package appstore

import (
	"context"
	"log/slog"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
)

// DefaultBrowseLimit is the page size used when a caller asks for none.
const DefaultBrowseLimit = 25

// maxBrowseLimit caps a single page.
const maxBrowseLimit = 100

// Audit actions recorded by the portal.
const (
	AuditActionListingCreated   = "listing_created"
	AuditActionListingSubmitted = "listing_submitted"
	AuditActionListingStatus    = "listing_status_changed"
	AuditActionListingPromotion = "listing_promotion_changed"
	AuditActionAppInstalled     = "app_installed"
	AuditActionAppUninstalled   = "app_uninstalled"
)

type Option func(*Service)

// Service enforces listing lifecycle rules before they reach the network.
type Service struct {
	store   wallet.AppStore
	auditor *audit.Publisher
	admins  map[string]struct{}
	logger  *slog.Logger
}

func NewService(store wallet.AppStore, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		admins: make(map[string]struct{}),
		logger: logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// WithAdmins sets the DIDs allowed to change listing status and promotion.
func WithAdmins(dids ...string) Option {
	return func(s *Service) {
		for _, did := range dids {
			if did != "" {
				s.admins[did] = struct{}{}
			}
		}
	}
}

// WithAuditor records portal actions.
func WithAuditor(p *audit.Publisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// IsAdmin reports whether the user may run admin operations.
func (s *Service) IsAdmin(user models.User) bool {
	_, ok := s.admins[user.DID]
	return ok && user.DID != ""
}

func (s *Service) requireAdmin(user models.User) error {
	if !s.IsAdmin(user) {
		return dErrors.New(dErrors.CodeForbidden, "admin access required")
	}
	return nil
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

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultBrowseLimit
	}
	return min(limit, maxBrowseLimit)
}
