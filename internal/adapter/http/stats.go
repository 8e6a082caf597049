package httpadapter

import "net/http"

// handleStatsOverview returns entity totals for the dashboard.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.respondError(w, "stats error", err)
		return
	}
	h.writeJSON(w, stats)
}
