// Package handler exposes guardian PIN management and verification state over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/platform/middleware"
	"walletgate/internal/transport/http/shared"
	respond "walletgate/internal/transport/http/shared/json"
	dErrors "walletgate/pkg/domain-errors"
	"walletgate/pkg/validation"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks PinManager,Verifications

// PinManager sets and removes a guardian's PIN.
type PinManager interface {
	SetPin(ctx context.Context, guardianDID, pin string) error
	RemovePin(ctx context.Context, guardianDID string)
	HasPin(ctx context.Context, guardianDID string) (bool, error)
}

// Verifications reads and clears remembered guardian verifications.
type Verifications interface {
	IsVerified(ctx context.Context, guardianDID string) (bool, error)
	ClearVerification(ctx context.Context, guardianDID string) error
}

// SetPinRequest sets the caller's guardian PIN.
type SetPinRequest struct {
	PIN string `json:"pin" validate:"required,min=4,max=64"`
}

// StatusResponse describes the guardian state relevant to the caller.
type StatusResponse struct {
	GuardianDID string `json:"guardianDid"`
	HasPin      bool   `json:"hasPin"`
	Verified    bool   `json:"verified"`
}

// Handler handles guardian endpoints.
type Handler struct {
	pins          PinManager
	verifications Verifications
	logger        *slog.Logger
}

// New creates a guardian Handler.
func New(pins PinManager, verifications Verifications, logger *slog.Logger) *Handler {
	return &Handler{pins: pins, verifications: verifications, logger: logger}
}

// Register registers the guardian routes with the chi router.
//
// PIN routes act on the caller's own DID and are closed to child profiles.
// Verification routes resolve a child profile to its guardian.
func (h *Handler) Register(r chi.Router) {
	r.Post("/guardian/pin", h.handleSetPin)
	r.Delete("/guardian/pin", h.handleRemovePin)
	r.Get("/guardian/verification", h.handleStatus)
	r.Delete("/guardian/verification", h.handleClearVerification)
}

func (h *Handler) handleSetPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := h.requireGuardian(w, r)
	if !ok {
		return
	}

	var req SetPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.PIN = strings.TrimSpace(req.PIN)
	if err := validation.Validate(&req); err != nil {
		shared.WriteError(w, err)
		return
	}

	if err := h.pins.SetPin(ctx, user.DID, req.PIN); err != nil {
		h.logger.ErrorContext(ctx, "failed to set guardian pin",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}
	// A new PIN invalidates any verification made under the old one.
	if err := h.verifications.ClearVerification(ctx, user.DID); err != nil {
		h.logger.WarnContext(ctx, "failed to clear verification after pin change",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemovePin(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireGuardian(w, r)
	if !ok {
		return
	}
	h.pins.RemovePin(r.Context(), user.DID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guardianDID, ok := h.resolveGuardian(w, r)
	if !ok {
		return
	}

	hasPin, err := h.pins.HasPin(ctx, guardianDID)
	if err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up guardian pin"))
		return
	}
	verified, err := h.verifications.IsVerified(ctx, guardianDID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read guardian verification",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, StatusResponse{
		GuardianDID: guardianDID,
		HasPin:      hasPin,
		Verified:    verified,
	})
}

func (h *Handler) handleClearVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	guardianDID, ok := h.resolveGuardian(w, r)
	if !ok {
		return
	}
	if err := h.verifications.ClearVerification(ctx, guardianDID); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requireGuardian(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return models.User{}, false
	}
	if user.IsChildProfile() {
		shared.WriteError(w, dErrors.New(dErrors.CodeForbidden, "child profiles cannot manage guardian pins"))
		return models.User{}, false
	}
	return user, true
}

func (h *Handler) resolveGuardian(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return "", false
	}
	if !user.IsChildProfile() {
		return user.DID, true
	}
	if user.GuardianDID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "child profile has no guardian"))
		return "", false
	}
	return user.GuardianDID, true
}
