package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
	"ad-launcher/internal/core/port/mocks"
)

// TestRefreshAccounts checks the refresh sequence: fetch the remote list
// with the token's credential, rebuild the cache wholesale, stamp the token.
func TestRefreshAccounts(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	remote := []domain.RemoteAccount{
		{ID: 9001, Name: "Alpha", Status: "active"},
		{ID: 9002, Name: "Beta", Status: "paused"},
	}

	repo.EXPECT().
		GetToken(mock.Anything, int64(3)).
		Return(&domain.AccessToken{ID: 3, Name: "main", Token: "tok-3"}, nil)
	platform.EXPECT().
		ListAdAccounts(mock.Anything).
		Return(remote, nil)
	repo.EXPECT().
		ReplaceAccounts(mock.Anything, int64(3), remote).
		Return(nil)
	repo.EXPECT().
		TouchToken(mock.Anything, int64(3)).
		Return(nil)

	var boundToken string
	svc := NewManagementUseCase(repo, func(token string) port.Platform {
		boundToken = token
		return platform
	})

	accounts, err := svc.RefreshAccounts(context.Background(), 3)
	if err != nil {
		t.Fatalf("RefreshAccounts error: %v", err)
	}
	if boundToken != "tok-3" {
		t.Fatalf("client bound to wrong credential: %q", boundToken)
	}
	if len(accounts) != 2 || accounts[0].ID != 9001 {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

// TestRefreshAccountsUnknownToken maps a missing token row to ErrNotFound
// before any remote call happens.
func TestRefreshAccountsUnknownToken(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		GetToken(mock.Anything, int64(99)).
		Return(nil, nil)

	svc := NewManagementUseCase(repo, func(string) port.Platform {
		t.Fatal("platform client must not be created for a missing token")
		return nil
	})

	_, err := svc.RefreshAccounts(context.Background(), 99)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestRefreshAccountsRemoteError checks the cache stays untouched when the
// remote listing fails.
func TestRefreshAccountsRemoteError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetToken(mock.Anything, int64(3)).
		Return(&domain.AccessToken{ID: 3, Token: "tok-3"}, nil)
	platform.EXPECT().
		ListAdAccounts(mock.Anything).
		Return(nil, errors.New("timeout"))

	svc := NewManagementUseCase(repo, func(string) port.Platform { return platform })

	if _, err := svc.RefreshAccounts(context.Background(), 3); err == nil {
		t.Fatal("expected error from remote listing")
	}
}

// TestGetAccountAdSetsPassthrough checks a single-account pass-through call
// resolves the credential and forwards the campaign filter.
func TestGetAccountAdSetsPassthrough(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(5)).
		Return(resolvedAccount(5, 9005, "Gamma", "tok-g"), nil)

	campaignID := int64(42)
	payload := map[string]any{"total": float64(1)}
	platform.EXPECT().
		GetAdSets(mock.Anything, int64(9005), &campaignID, 1, 100).
		Return(payload, nil)

	var boundToken string
	svc := NewManagementUseCase(repo, func(token string) port.Platform {
		boundToken = token
		return platform
	})

	data, err := svc.GetAccountAdSets(context.Background(), 5, &campaignID)
	if err != nil {
		t.Fatalf("GetAccountAdSets error: %v", err)
	}
	if boundToken != "tok-g" {
		t.Fatalf("client bound to wrong credential: %q", boundToken)
	}
	if data["total"] != float64(1) {
		t.Fatalf("unexpected payload: %v", data)
	}
}

// TestGetAccountCampaignsUnknownAccount maps a missing cached account to
// ErrNotFound.
func TestGetAccountCampaignsUnknownAccount(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(404)).
		Return(nil, nil)

	svc := NewManagementUseCase(repo, func(string) port.Platform { return nil })

	_, err := svc.GetAccountCampaigns(context.Background(), 404)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
