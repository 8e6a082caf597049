package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"ad-launcher/internal/core/domain"
)

// tokenResponse never echoes the stored credential back to the operator.
type tokenResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	OrganizationID *int64     `json:"organization_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastUsed       *time.Time `json:"last_used,omitempty"`
}

func toTokenResponse(t domain.AccessToken) tokenResponse {
	return tokenResponse{
		ID:             t.ID,
		Name:           t.Name,
		OrganizationID: t.OrganizationID,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		LastUsed:       t.LastUsed,
	}
}

// handleListTokens returns all stored access tokens.
func (h *Handler) handleListTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.svc.ListTokens(r.Context())
	if err != nil {
		h.respondError(w, "list tokens error", err)
		return
	}
	resp := make([]tokenResponse, 0, len(tokens))
	for _, t := range tokens {
		resp = append(resp, toTokenResponse(t))
	}
	h.writeJSON(w, resp)
}

// handleCreateToken stores a new access token.
func (h *Handler) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Token          string `json:"token"`
		OrganizationID *int64 `json:"organization_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Token == "" {
		http.Error(w, "name and token are required", http.StatusBadRequest)
		return
	}
	token, err := h.svc.CreateToken(r.Context(), req.Name, req.Token, req.OrganizationID)
	if err != nil {
		h.respondError(w, "create token error", err)
		return
	}
	h.writeJSON(w, toTokenResponse(*token))
}

// handleDeleteToken removes a token by id.
func (h *Handler) handleDeleteToken(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteToken(r.Context(), id); err != nil {
		h.respondError(w, "delete token error", err)
		return
	}
	h.writeJSON(w, map[string]string{"message": "Token deleted"})
}

// handleRefreshAccounts rebuilds the cached account list for a token from
// the remote platform and returns the fetched accounts.
func (h *Handler) handleRefreshAccounts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	accounts, err := h.svc.RefreshAccounts(r.Context(), id)
	if err != nil {
		h.respondError(w, "refresh accounts error", err)
		return
	}
	h.writeJSON(w, map[string]any{
		"message":  "accounts refreshed",
		"accounts": accounts,
	})
}
