package httpadapter

import (
	"net/http"
	"time"

	"ad-launcher/internal/core/domain"
)

type historyResponse struct {
	ID                int64            `json:"id"`
	CampaignName      string           `json:"campaign_name"`
	AccountsTargeted  []int64          `json:"accounts_targeted"`
	AccountsSucceeded []int64          `json:"accounts_succeeded"`
	AccountsFailed    []int64          `json:"accounts_failed"`
	ErrorMessages     map[int64]string `json:"error_messages,omitempty"`
	LaunchedAt        time.Time        `json:"launched_at"`
}

// handleListHistory returns recent launch records, newest first.
func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListLaunchHistory(r.Context())
	if err != nil {
		h.respondError(w, "list history error", err)
		return
	}
	resp := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, historyToResponse(rec))
	}
	h.writeJSON(w, resp)
}

func historyToResponse(rec domain.LaunchHistory) historyResponse {
	return historyResponse{
		ID:                rec.ID,
		CampaignName:      rec.CampaignName,
		AccountsTargeted:  rec.AccountsTargeted,
		AccountsSucceeded: rec.AccountsSucceeded,
		AccountsFailed:    rec.AccountsFailed,
		ErrorMessages:     rec.ErrorMessages,
		LaunchedAt:        rec.LaunchedAt,
	}
}
