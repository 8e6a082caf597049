package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"ad-launcher/internal/core/domain"
)

type templateRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Objective        int     `json:"objective"`
	DailyBudget      float64 `json:"daily_budget"`
	LifetimeBudget   float64 `json:"lifetime_budget"`
	BillingEvent     int     `json:"billing_event"`
	BidAmount        float64 `json:"bid_amount"`
	OptimizationGoal int     `json:"optimization_goal"`
	TargetingJSON    string  `json:"targeting_json"`
}

type templateResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Objective        int       `json:"objective"`
	DailyBudget      float64   `json:"daily_budget"`
	LifetimeBudget   float64   `json:"lifetime_budget"`
	BillingEvent     int       `json:"billing_event"`
	BidAmount        float64   `json:"bid_amount"`
	OptimizationGoal int       `json:"optimization_goal"`
	TargetingJSON    string    `json:"targeting_json,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func templateToResponse(t domain.CampaignTemplate) templateResponse {
	return templateResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		Objective:        t.Objective,
		DailyBudget:      t.DailyBudget,
		LifetimeBudget:   t.LifetimeBudget,
		BillingEvent:     t.BillingEvent,
		BidAmount:        t.BidAmount,
		OptimizationGoal: t.OptimizationGoal,
		TargetingJSON:    t.TargetingJSON,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		h.respondError(w, "list templates error", err)
		return
	}
	resp := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, templateToResponse(t))
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	created, err := h.svc.CreateTemplate(r.Context(), domain.CampaignTemplate{
		Name:             req.Name,
		Description:      req.Description,
		Objective:        req.Objective,
		DailyBudget:      req.DailyBudget,
		LifetimeBudget:   req.LifetimeBudget,
		BillingEvent:     req.BillingEvent,
		BidAmount:        req.BidAmount,
		OptimizationGoal: req.OptimizationGoal,
		TargetingJSON:    req.TargetingJSON,
	})
	if err != nil {
		h.respondError(w, "create template error", err)
		return
	}
	h.writeJSON(w, templateToResponse(*created))
}

func (h *Handler) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteTemplate(r.Context(), id); err != nil {
		h.respondError(w, "delete template error", err)
		return
	}
	h.writeJSON(w, map[string]string{"message": "Template deleted"})
}
