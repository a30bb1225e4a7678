package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"walletgate/internal/consentflow/livesync"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/service"
	"walletgate/internal/guardian"
	"walletgate/internal/platform/middleware"
	"walletgate/internal/transport/http/shared"
	respond "walletgate/internal/transport/http/shared/json"
	dErrors "walletgate/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the consent-flow operations the handler exposes.
type Service interface {
	Preview(ctx context.Context, user models.User, contractURI string) (*service.PreviewResult, error)
	Consented(ctx context.Context, user models.User) ([]models.ConsentedContract, error)
	Accept(ctx context.Context, req service.AcceptRequest) (*service.AcceptResult, error)
	UpdateTerms(ctx context.Context, req service.UpdateRequest) (*service.UpdateResult, error)
	Withdraw(ctx context.Context, req service.WithdrawRequest) (*service.WithdrawResult, error)
	Sync(ctx context.Context, user models.User, recordsByCategory map[string][]string) (*livesync.SyncResult, error)
	SyncProgress() livesync.Progress
}

// Handler handles consent-flow endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new consent-flow Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: svc,
	}
}

// Register registers the consent-flow routes with the chi router.
//
//	GET  /consent-flow/preview?uri=     contract details with starting terms
//	GET  /consent-flow/consents         consented contracts
//	POST /consent-flow/consents         accept a contract
//	PUT  /consent-flow/terms            save edited terms
//	POST /consent-flow/terms/withdraw   withdraw consent
//	POST /consent-flow/sync             push credentials to live contracts
//	GET  /consent-flow/sync/progress    state of the last sync
func (h *Handler) Register(r chi.Router) {
	r.Get("/consent-flow/preview", h.handlePreview)
	r.Get("/consent-flow/consents", h.handleListConsents)
	r.Post("/consent-flow/consents", h.handleAccept)
	r.Put("/consent-flow/terms", h.handleUpdateTerms)
	r.Post("/consent-flow/terms/withdraw", h.handleWithdraw)
	r.Post("/consent-flow/sync", h.handleSync)
	r.Get("/consent-flow/sync/progress", h.handleSyncProgress)
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	res, err := h.service.Preview(ctx, user, r.URL.Query().Get("uri"))
	if err != nil {
		h.logFailure(ctx, "failed to preview contract", err)
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListConsents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	contracts, err := h.service.Consented(ctx, user)
	if err != nil {
		h.logFailure(ctx, "failed to list consented contracts", err)
		shared.WriteError(w, err)
		return
	}
	if contracts == nil {
		contracts = []models.ConsentedContract{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"consents": contracts})
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req AcceptRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid accept request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	res, err := h.service.Accept(ctx, service.AcceptRequest{
		Session:     guardian.Session{User: user, PIN: req.GuardianPIN},
		ContractURI: req.ContractURI,
		Terms:       req.Terms,
		Duration:    req.Duration,
	})
	if err != nil {
		h.logFailure(ctx, "failed to accept contract", err)
		shared.WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if res.AlreadyConsented {
		status = http.StatusOK
	}
	respond.WriteJSON(w, status, res)
}

func (h *Handler) handleUpdateTerms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateTermsRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid update terms request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	res, err := h.service.UpdateTerms(ctx, service.UpdateRequest{
		User:     user,
		TermsURI: req.TermsURI,
		Saved:    req.Saved,
		Edited:   req.Edited,
		Duration: req.Duration,
	})
	if err != nil {
		h.logFailure(ctx, "failed to update terms", err)
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req WithdrawRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid withdraw request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	res, err := h.service.Withdraw(ctx, service.WithdrawRequest{
		Session:           guardian.Session{User: user, PIN: req.GuardianPIN},
		TermsURI:          req.TermsURI,
		ContractURI:       req.ContractURI,
		DeleteCredentials: req.DeleteCredentials,
	})
	if err != nil {
		h.logFailure(ctx, "failed to withdraw consent", err)
		if res != nil && res.Withdrawn {
			// Consent is gone but some credentials remain.
			respond.WriteJSON(w, http.StatusMultiStatus, map[string]any{
				"withdrawn":         true,
				"deleted":           res.Deleted,
				"error":             shared.DomainCodeToHTTPCode(dErrors.CodeOf(err)),
				"error_description": err.Error(),
			})
			return
		}
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req SyncRequest
	if r.ContentLength != 0 {
		if !h.decode(w, r, &req) {
			return
		}
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	res, err := h.service.Sync(ctx, user, req.Records)
	if err != nil {
		h.logFailure(ctx, "consent sync failed", err)
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSyncProgress(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.service.SyncProgress())
}

func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	ctx := r.Context()
	user, ok := middleware.GetUser(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return models.User{}, false
	}
	return user, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "failed to decode request body",
			"request_id", middleware.GetRequestID(ctx),
			"path", r.URL.Path,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	level := slog.LevelError
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeNotFound,
		dErrors.CodeForbidden, dErrors.CodeCancelled, dErrors.CodeUnauthorized:
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
}
