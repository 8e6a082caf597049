package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"ad-launcher/internal/core/domain"
)

type organizationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toOrganizationResponse(o domain.Organization) organizationResponse {
	return organizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

// handleListOrganizations returns all organizations.
func (h *Handler) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.ListOrganizations(r.Context())
	if err != nil {
		h.respondError(w, "list organizations error", err)
		return
	}
	resp := make([]organizationResponse, 0, len(orgs))
	for _, o := range orgs {
		resp = append(resp, toOrganizationResponse(o))
	}
	h.writeJSON(w, resp)
}

// handleCreateOrganization creates a new organization from a JSON body with
// name and an optional description.
func (h *Handler) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	org, err := h.svc.CreateOrganization(r.Context(), req.Name, req.Description)
	if err != nil {
		h.respondError(w, "create organization error", err)
		return
	}
	h.writeJSON(w, toOrganizationResponse(*org))
}

// handleDeleteOrganization removes an organization by id.
func (h *Handler) handleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteOrganization(r.Context(), id); err != nil {
		h.respondError(w, "delete organization error", err)
		return
	}
	h.writeJSON(w, map[string]string{"message": "Organization deleted"})
}
