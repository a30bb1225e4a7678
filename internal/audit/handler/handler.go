// Package handler lets a holder read their own audit trail.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"walletgate/internal/audit"
	"walletgate/internal/platform/middleware"
	"walletgate/internal/transport/http/shared"
	respond "walletgate/internal/transport/http/shared/json"
	dErrors "walletgate/pkg/domain-errors"
)

const (
	defaultLimit = 50
	maxLimit     = audit.DefaultRetention
)

// Lister reads a holder's audit events in append order.
type Lister interface {
	List(ctx context.Context, holderDID string) ([]audit.Event, error)
}

// EventsResponse lists events newest first.
type EventsResponse struct {
	Events []audit.Event `json:"events"`
}

type Handler struct {
	events Lister
	logger *slog.Logger
}

func New(events Lister, logger *slog.Logger) *Handler {
	return &Handler{events: events, logger: logger}
}

// Register mounts GET /audit/events. Optional query: action, limit.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/events", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	holderDID := middleware.GetUserDID(ctx)
	if holderDID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = min(n, maxLimit)
	}
	action := r.URL.Query().Get("action")

	events, err := h.events.List(ctx, holderDID)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	out := make([]audit.Event, 0, min(len(events), limit))
	for _, e := range slices.Backward(events) {
		if action != "" && e.Action != action {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	respond.WriteJSON(w, http.StatusOK, EventsResponse{Events: out})
}
