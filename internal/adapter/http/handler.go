package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ad-launcher/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the two use cases and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.ManagementUseCase
	launcher port.LaunchUseCase
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.ManagementUseCase, launcher port.LaunchUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, launcher: launcher, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/organizations", h.handleListOrganizations)
		r.Post("/organizations", h.handleCreateOrganization)
		r.Delete("/organizations/{id}", h.handleDeleteOrganization)

		r.Get("/tokens", h.handleListTokens)
		r.Post("/tokens", h.handleCreateToken)
		r.Delete("/tokens/{id}", h.handleDeleteToken)
		r.Post("/tokens/{id}/refresh-accounts", h.handleRefreshAccounts)

		r.Get("/accounts", h.handleListAccounts)
		r.Get("/accounts/{id}/campaigns", h.handleGetAccountCampaigns)
		r.Post("/accounts/{id}/campaigns", h.handleCreateCampaign)
		r.Get("/accounts/{id}/adsets", h.handleGetAccountAdSets)
		r.Post("/accounts/{id}/adsets", h.handleCreateAdSet)
		r.Get("/accounts/{id}/ads", h.handleGetAccountAds)
		r.Post("/accounts/{id}/ads", h.handleCreateAd)

		r.Post("/bulk-launch", h.handleBulkLaunch)

		r.Get("/templates", h.handleListTemplates)
		r.Post("/templates", h.handleCreateTemplate)
		r.Delete("/templates/{id}", h.handleDeleteTemplate)

		r.Get("/history", h.handleListHistory)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// idParam extracts the {id} path parameter as an int64.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeJSON encodes v as the JSON response body. Encoding should rarely
// fail; failures are logged and the response is left as written.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps a use case error to an HTTP status: missing entities
// become 404, remote application errors become 400 carrying the platform's
// message, everything else is logged and reported as 500.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, port.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var perr port.PlatformError
	if errors.As(err, &perr) {
		http.Error(w, perr.ErrorMessage(), http.StatusBadRequest)
		return
	}
	h.logger.Error(op, slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
