package httpadapter

import (
	"encoding/json"
	"net/http"

	"ad-launcher/internal/core/port"
)

// handleBulkLaunch replays a campaign specification across many accounts and
// returns the per-account outcome partition.
func (h *Handler) handleBulkLaunch(w http.ResponseWriter, r *http.Request) {
	var req port.BulkLaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.AccountIDs) == 0 {
		http.Error(w, "account_ids is required", http.StatusBadRequest)
		return
	}
	if req.Campaign.Name == "" {
		http.Error(w, "campaign name is required", http.StatusBadRequest)
		return
	}
	result, err := h.launcher.BulkLaunch(r.Context(), req)
	if err != nil {
		h.respondError(w, "bulk launch error", err)
		return
	}
	h.writeJSON(w, result)
}
