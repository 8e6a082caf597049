package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ad-launcher/internal/core/domain"
)

type accountResponse struct {
	ID               int64  `json:"id"`
	RemoteAccountID  int64  `json:"remote_account_id"`
	Name             string `json:"name,omitempty"`
	Status           string `json:"status,omitempty"`
	TokenID          int64  `json:"token_id"`
	TokenName        string `json:"token_name"`
	OrganizationID   *int64 `json:"organization_id,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// handleListAccounts returns all cached ad accounts with token and
// organization display fields.
func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		h.respondError(w, "list accounts error", err)
		return
	}
	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, accountResponse{
			ID:               a.ID,
			RemoteAccountID:  a.RemoteID,
			Name:             a.Name,
			Status:           a.Status,
			TokenID:          a.TokenID,
			TokenName:        a.TokenName,
			OrganizationID:   a.OrganizationID,
			OrganizationName: a.OrganizationName,
		})
	}
	h.writeJSON(w, resp)
}

// optionalIDQuery parses an optional int64 query parameter, returning nil
// when the parameter is absent.
func optionalIDQuery(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleGetAccountCampaigns proxies the campaign listing of one account.
func (h *Handler) handleGetAccountCampaigns(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	data, err := h.svc.GetAccountCampaigns(r.Context(), id)
	if err != nil {
		h.respondError(w, "get account campaigns error", err)
		return
	}
	h.writeJSON(w, data)
}

// handleGetAccountAdSets proxies the ad set listing of one account,
// optionally scoped by a campaign_id query parameter.
func (h *Handler) handleGetAccountAdSets(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	campaignID, err := optionalIDQuery(r, "campaign_id")
	if err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}
	data, err := h.svc.GetAccountAdSets(r.Context(), id, campaignID)
	if err != nil {
		h.respondError(w, "get account adsets error", err)
		return
	}
	h.writeJSON(w, data)
}

// handleGetAccountAds proxies the ad listing of one account, optionally
// scoped by an adset_id query parameter.
func (h *Handler) handleGetAccountAds(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	adsetID, err := optionalIDQuery(r, "adset_id")
	if err != nil {
		http.Error(w, "invalid adset_id", http.StatusBadRequest)
		return
	}
	data, err := h.svc.GetAccountAds(r.Context(), id, adsetID)
	if err != nil {
		h.respondError(w, "get account ads error", err)
		return
	}
	h.writeJSON(w, data)
}

// handleCreateCampaign creates a campaign in a single cached account.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var spec domain.CampaignSpec
	if err = json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaignID, err := h.svc.CreateCampaign(r.Context(), id, spec)
	if err != nil {
		h.respondError(w, "create campaign error", err)
		return
	}
	h.writeJSON(w, map[string]int64{"campaign_id": campaignID})
}

// handleCreateAdSet creates an ad set in a single cached account. The
// parent campaign id rides in the body next to the spec fields.
func (h *Handler) handleCreateAdSet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req struct {
		domain.AdSetSpec
		CampaignID int64 `json:"campaign_id"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	adsetID, err := h.svc.CreateAdSet(r.Context(), id, req.CampaignID, req.AdSetSpec)
	if err != nil {
		h.respondError(w, "create adset error", err)
		return
	}
	h.writeJSON(w, map[string]int64{"adset_id": adsetID})
}

// handleCreateAd creates an ad in a single cached account. The parent ad
// set id rides in the body next to the spec fields.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req struct {
		domain.AdSpec
		AdSetID int64 `json:"adset_id"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	adID, err := h.svc.CreateAd(r.Context(), id, req.AdSetID, req.AdSpec)
	if err != nil {
		h.respondError(w, "create ad error", err)
		return
	}
	h.writeJSON(w, map[string]int64{"ad_id": adID})
}
