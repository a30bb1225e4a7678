// Package handler exposes the app-store portal over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/platform/middleware"
	"walletgate/internal/transport/http/shared"
	respond "walletgate/internal/transport/http/shared/json"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the app-store operations the handler exposes.
type Service interface {
	CreateListing(ctx context.Context, actor models.User, integrationID string, in wallet.ListingInput) (wallet.Listing, error)
	UpdateListing(ctx context.Context, actor models.User, listingID string, in wallet.ListingUpdate) (wallet.Listing, error)
	DeleteListing(ctx context.Context, actor models.User, listingID string) error
	Get(ctx context.Context, actor models.User, listingID string) (wallet.Listing, error)
	SubmitForReview(ctx context.Context, actor models.User, listingID string) (wallet.Listing, error)
	AdminUpdateStatus(ctx context.Context, actor models.User, listingID string, status wallet.ListingStatus) (wallet.Listing, error)
	AdminUpdatePromotion(ctx context.Context, actor models.User, listingID string, level wallet.PromotionLevel) (wallet.Listing, error)
	Browse(ctx context.Context, q wallet.ListingQuery) (wallet.ListingPage, error)
	Install(ctx context.Context, holder models.User, listingID string) error
	Uninstall(ctx context.Context, holder models.User, listingID string) error
	Installed(ctx context.Context, holder models.User, q wallet.ListingQuery) (wallet.InstalledPage, error)
}

// CreateListingRequest creates a listing under an integration.
type CreateListingRequest struct {
	IntegrationID string `json:"integration_id"`
	wallet.ListingInput
}

// StatusRequest changes a listing's status.
type StatusRequest struct {
	Status wallet.ListingStatus `json:"status"`
}

// PromotionRequest changes a listing's promotion level.
type PromotionRequest struct {
	PromotionLevel wallet.PromotionLevel `json:"promotion_level"`
}

type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register registers the holder and developer app-store routes.
//
//	GET    /app-store/listings                     browse LISTED apps
//	GET    /app-store/listings/{id}                one listing
//	POST   /app-store/listings                     create a draft listing
//	PATCH  /app-store/listings/{id}                update listing fields
//	DELETE /app-store/listings/{id}                delete a listing
//	POST   /app-store/listings/{id}/submit         submit a draft for review
//	GET    /app-store/installed                    installed apps
//	POST   /app-store/listings/{id}/install        install
//	DELETE /app-store/listings/{id}/install        uninstall
func (h *Handler) Register(r chi.Router) {
	r.Get("/app-store/listings", h.handleBrowse)
	r.Get("/app-store/listings/{id}", h.handleGet)
	r.Post("/app-store/listings", h.handleCreate)
	r.Patch("/app-store/listings/{id}", h.handleUpdate)
	r.Delete("/app-store/listings/{id}", h.handleDelete)
	r.Post("/app-store/listings/{id}/submit", h.handleSubmit)
	r.Get("/app-store/installed", h.handleInstalled)
	r.Post("/app-store/listings/{id}/install", h.handleInstall)
	r.Delete("/app-store/listings/{id}/install", h.handleUninstall)
}

// RegisterAdmin registers the review routes. Callers mount them behind RequireAdmin.
//
//	GET /admin/app-store/listings?status=         listings in any status
//	PUT /admin/app-store/listings/{id}/status     set status
//	PUT /admin/app-store/listings/{id}/promotion  set promotion level
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/app-store/listings", h.handleAdminBrowse)
	r.Put("/admin/app-store/listings/{id}/status", h.handleAdminStatus)
	r.Put("/admin/app-store/listings/{id}/promotion", h.handleAdminPromotion)
}

func (h *Handler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	q, ok := h.query(w, r)
	if !ok {
		return
	}
	q.Status = wallet.ListingListed
	page, err := h.service.Browse(r.Context(), q)
	if err != nil {
		h.fail(w, r, "failed to browse listings", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	listing, err := h.service.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to get listing", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req CreateListingRequest
	if !h.decode(w, r, &req) {
		return
	}
	listing, err := h.service.CreateListing(r.Context(), user, req.IntegrationID, req.ListingInput)
	if err != nil {
		h.fail(w, r, "failed to create listing", err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, listing)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req wallet.ListingUpdate
	if !h.decode(w, r, &req) {
		return
	}
	listing, err := h.service.UpdateListing(r.Context(), user, chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, "failed to update listing", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteListing(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to delete listing", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	listing, err := h.service.SubmitForReview(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to submit listing", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleInstalled(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	q, ok := h.query(w, r)
	if !ok {
		return
	}
	page, err := h.service.Installed(r.Context(), user, q)
	if err != nil {
		h.fail(w, r, "failed to list installed apps", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleInstall(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.service.Install(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to install app", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUninstall(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.service.Uninstall(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to uninstall app", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAdminBrowse(w http.ResponseWriter, r *http.Request) {
	q, ok := h.query(w, r)
	if !ok {
		return
	}
	q.Status = wallet.ListingStatus(r.URL.Query().Get("status"))
	page, err := h.service.Browse(r.Context(), q)
	if err != nil {
		h.fail(w, r, "failed to browse listings", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleAdminStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req StatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	listing, err := h.service.AdminUpdateStatus(r.Context(), user, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.fail(w, r, "failed to update listing status", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleAdminPromotion(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req PromotionRequest
	if !h.decode(w, r, &req) {
		return
	}
	listing, err := h.service.AdminUpdatePromotion(r.Context(), user, chi.URLParam(r, "id"), req.PromotionLevel)
	if err != nil {
		h.fail(w, r, "failed to update promotion level", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) (wallet.ListingQuery, bool) {
	values := r.URL.Query()
	q := wallet.ListingQuery{
		Cursor:   values.Get("cursor"),
		Category: values.Get("category"),
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a non-negative integer"))
			return wallet.ListingQuery{}, false
		}
		q.Limit = limit
	}
	return q, true
}

func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return models.User{}, false
	}
	return user, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelError
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeNotFound,
		dErrors.CodeConflict, dErrors.CodeForbidden, dErrors.CodeUnauthorized:
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", middleware.GetRequestID(ctx),
		"path", r.URL.Path,
		"error", err,
	)
	shared.WriteError(w, err)
}
