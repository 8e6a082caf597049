package newsbreak

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ad-launcher/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second)
}

// TestAccessTokenHeader checks every request carries the bound credential.
func TestAccessTokenHeader(t *testing.T) {
	var gotToken string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("Access-Token")
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": map[string]any{}})
	})

	if _, err := c.GetCampaigns(context.Background(), 9001, 1, 100); err != nil {
		t.Fatalf("GetCampaigns error: %v", err)
	}
	if gotToken != "test-token" {
		t.Fatalf("expected Access-Token header, got %q", gotToken)
	}
}

// TestCreateCampaignOmitsZeroBudgets checks zero-valued optional budgets
// never appear in the request body.
func TestCreateCampaignOmitsZeroBudgets(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaign/create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{"campaign_id": 555},
		})
	})

	id, err := c.CreateCampaign(context.Background(), 9001, domain.CampaignSpec{
		Name:        "Summer",
		Objective:   domain.ObjectiveTraffic,
		Status:      domain.StatusOn,
		DailyBudget: 50,
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if id != 555 {
		t.Fatalf("expected campaign id 555, got %d", id)
	}
	if body["daily_budget"] != float64(50) {
		t.Fatalf("daily_budget missing from body: %v", body)
	}
	if _, ok := body["lifetime_budget"]; ok {
		t.Fatalf("zero lifetime_budget must be omitted: %v", body)
	}
}

// TestEnvelopeError checks a non-zero envelope code surfaces as *APIError
// regardless of which message field the endpoint uses.
func TestEnvelopeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 40001, "errMsg": "budget too low"})
	})

	_, err := c.CreateCampaign(context.Background(), 9001, domain.CampaignSpec{Name: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != 40001 || apiErr.Message != "budget too low" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

// TestEnvelopeErrorFallbackMessage checks the synthesized message when the
// platform sends no message field at all.
func TestEnvelopeErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 500})
	})

	err := c.DeleteCampaign(context.Background(), 9001, 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "API error code: 500" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

// TestListAdAccountsNested collapses the organization-grouped shape into
// flat rows carrying the organization fields.
func TestListAdAccountsNested(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"list": []map[string]any{
					{
						"id":   77,
						"name": "Acme Org",
						"adAccounts": []map[string]any{
							{"id": 9001, "name": "Alpha", "status": "active"},
							{"id": 9002, "name": "Beta"},
						},
					},
				},
			},
		})
	})

	accounts, err := c.ListAdAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAdAccounts error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].OrgID != 77 || accounts[0].OrgName != "Acme Org" {
		t.Fatalf("organization fields missing: %+v", accounts[0])
	}
	if accounts[1].Status != "active" {
		t.Fatalf("missing status must default to active: %+v", accounts[1])
	}
}

// TestListAdAccountsFlat decodes the flat list shape.
func TestListAdAccountsFlat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": []map[string]any{
				{"id": 9001, "name": "Alpha", "status": "paused"},
			},
		})
	})

	accounts, err := c.ListAdAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAdAccounts error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != 9001 || accounts[0].Status != "paused" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

// TestGetAdSetsCampaignFilter checks the optional campaign filter is only
// sent when present.
func TestGetAdSetsCampaignFilter(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": map[string]any{}})
	})

	if _, err := c.GetAdSets(context.Background(), 9001, nil, 1, 100); err != nil {
		t.Fatalf("GetAdSets error: %v", err)
	}
	if _, ok := body["campaign_id"]; ok {
		t.Fatalf("nil filter must be omitted: %v", body)
	}

	campaignID := int64(42)
	if _, err := c.GetAdSets(context.Background(), 9001, &campaignID, 1, 100); err != nil {
		t.Fatalf("GetAdSets error: %v", err)
	}
	if body["campaign_id"] != float64(42) {
		t.Fatalf("filter missing from body: %v", body)
	}
}

// TestUploadAsset round-trips a file through the multipart endpoint.
func TestUploadAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if r.FormValue("ad_account_id") != "9001" {
			t.Errorf("ad_account_id = %q", r.FormValue("ad_account_id"))
		}
		if r.FormValue("asset_type") != "1" {
			t.Errorf("asset_type = %q", r.FormValue("asset_type"))
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			f.Close()
			if header.Filename != "banner.jpg" {
				t.Errorf("filename = %q", header.Filename)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{"asset_id": 31337},
		})
	})

	out, err := c.UploadAsset(context.Background(), 9001, path, domain.AssetImage)
	if err != nil {
		t.Fatalf("UploadAsset error: %v", err)
	}
	if out["asset_id"] != float64(31337) {
		t.Fatalf("unexpected payload: %v", out)
	}
}
