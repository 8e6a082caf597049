package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ad-launcher/internal/adapter/newsbreak"
	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// stubManagement embeds the interface so each test overrides only the
// methods it expects; anything else panics.
type stubManagement struct {
	port.ManagementUseCase
	getAccountCampaigns func(ctx context.Context, accountID int64) (map[string]any, error)
	getStats            func(ctx context.Context) (*port.StatsResp, error)
}

func (s *stubManagement) GetAccountCampaigns(ctx context.Context, accountID int64) (map[string]any, error) {
	return s.getAccountCampaigns(ctx, accountID)
}

func (s *stubManagement) GetStats(ctx context.Context) (*port.StatsResp, error) {
	return s.getStats(ctx)
}

type stubLauncher struct {
	bulkLaunch func(ctx context.Context, req port.BulkLaunchRequest) (*port.BulkLaunchResult, error)
}

func (s *stubLauncher) BulkLaunch(ctx context.Context, req port.BulkLaunchRequest) (*port.BulkLaunchResult, error) {
	return s.bulkLaunch(ctx, req)
}

func newTestHandler(svc port.ManagementUseCase, launcher port.LaunchUseCase) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, launcher, logger)
}

// TestBulkLaunchRoute round-trips a bulk launch request and checks the
// outcome partition comes back as JSON.
func TestBulkLaunchRoute(t *testing.T) {
	var got port.BulkLaunchRequest
	launcher := &stubLauncher{
		bulkLaunch: func(_ context.Context, req port.BulkLaunchRequest) (*port.BulkLaunchResult, error) {
			got = req
			adsetID := int64(200)
			return &port.BulkLaunchResult{
				Succeeded: []domain.LaunchSuccess{{
					AccountID:   1,
					AccountName: "Alpha",
					CampaignID:  555,
					AdSetID:     &adsetID,
				}},
				Failed: []domain.LaunchFailure{{
					AccountID: 2,
					Error:     "budget too low",
				}},
			}, nil
		},
	}
	h := newTestHandler(&stubManagement{}, launcher)

	body := `{
		"account_ids": [1, 2],
		"campaign": {"name": "Summer Push", "objective": 2},
		"ad_set": {"name": "Core", "billing_event": 2}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-launch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if len(got.AccountIDs) != 2 || got.Campaign.Name != "Summer Push" || got.AdSet == nil || got.Ad != nil {
		t.Fatalf("decoded request mismatch: %+v", got)
	}

	var result port.BulkLaunchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Succeeded) != 1 || result.Succeeded[0].CampaignID != 555 {
		t.Fatalf("unexpected succeeded: %+v", result.Succeeded)
	}
	if len(result.Failed) != 1 || result.Failed[0].Error != "budget too low" {
		t.Fatalf("unexpected failed: %+v", result.Failed)
	}
}

// TestBulkLaunchValidation rejects requests without targets or a campaign
// name before reaching the orchestrator.
func TestBulkLaunchValidation(t *testing.T) {
	h := newTestHandler(&stubManagement{}, &stubLauncher{
		bulkLaunch: func(context.Context, port.BulkLaunchRequest) (*port.BulkLaunchResult, error) {
			t.Fatal("orchestrator must not run on invalid input")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{"campaign": {"name": "x"}}`,
		`{"account_ids": [1], "campaign": {}}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-launch", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

// TestErrorMapping checks the error translation: missing entities become
// 404, platform rejections become 400 carrying the platform message.
func TestErrorMapping(t *testing.T) {
	svc := &stubManagement{
		getAccountCampaigns: func(context.Context, int64) (map[string]any, error) {
			return nil, port.ErrNotFound
		},
	}
	h := newTestHandler(svc, &stubLauncher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/5/campaigns", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	svc.getAccountCampaigns = func(context.Context, int64) (map[string]any, error) {
		return nil, &newsbreak.APIError{Code: 40001, Message: "budget too low"}
	}
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "budget too low") {
		t.Fatalf("expected platform message in body, got %q", rec.Body.String())
	}
}

// TestStatsRoute checks the overview endpoint shape.
func TestStatsRoute(t *testing.T) {
	svc := &stubManagement{
		getStats: func(context.Context) (*port.StatsResp, error) {
			return &port.StatsResp{Accounts: 6, Tokens: 2, Organizations: 2, Templates: 1, Launches: 9}, nil
		},
	}
	h := newTestHandler(svc, &stubLauncher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var stats map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats["total_accounts"] != 6 || stats["total_launches"] != 9 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}
