package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"ad-launcher/internal/adapter/newsbreak"
	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
	"ad-launcher/internal/core/port/mocks"
)

func resolvedAccount(id, remoteID int64, name, token string) *domain.ResolvedAccount {
	return &domain.ResolvedAccount{
		CachedAccount: domain.CachedAccount{
			ID:       id,
			TokenID:  1,
			RemoteID: remoteID,
			Name:     name,
		},
		Token: token,
	}
}

// TestBulkLaunchPartition drives two accounts through a campaign-only
// launch: one succeeds, one is rejected by the platform. Every target must
// land in exactly one outcome list and the history record must mirror the
// partition.
func TestBulkLaunchPartition(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(1)).
		Return(resolvedAccount(1, 9001, "Alpha", "tok-a"), nil)
	repo.EXPECT().
		GetAccount(mock.Anything, int64(2)).
		Return(resolvedAccount(2, 9002, "Beta", "tok-a"), nil)

	platform.EXPECT().
		CreateCampaign(mock.Anything, int64(9001), mock.Anything).
		Return(int64(555), nil)
	platform.EXPECT().
		CreateCampaign(mock.Anything, int64(9002), mock.Anything).
		Return(int64(0), &newsbreak.APIError{Code: 40001, Message: "budget too low"})

	var history domain.LaunchHistory
	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Run(func(_ context.Context, h domain.LaunchHistory) { history = h }).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return platform })

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{1, 2},
		Campaign:   domain.CampaignSpec{Name: "Summer Push", Objective: domain.ObjectiveTraffic},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}

	if len(result.Succeeded) != 1 || len(result.Failed) != 1 {
		t.Fatalf("expected 1 succeeded and 1 failed, got %d/%d", len(result.Succeeded), len(result.Failed))
	}
	s := result.Succeeded[0]
	if s.AccountID != 1 || s.CampaignID != 555 || s.AccountName != "Alpha" {
		t.Fatalf("unexpected success record: %+v", s)
	}
	if s.AdSetID != nil || s.AdID != nil {
		t.Fatalf("campaign-only launch must not report adset or ad ids: %+v", s)
	}
	f := result.Failed[0]
	if f.AccountID != 2 || f.Error != "budget too low" {
		t.Fatalf("unexpected failure record: %+v", f)
	}

	if history.CampaignName != "Summer Push" {
		t.Fatalf("history campaign name: %q", history.CampaignName)
	}
	if len(history.AccountsTargeted) != 2 || history.AccountsTargeted[0] != 1 || history.AccountsTargeted[1] != 2 {
		t.Fatalf("history targeted: %v", history.AccountsTargeted)
	}
	if len(history.AccountsSucceeded) != 1 || history.AccountsSucceeded[0] != 1 {
		t.Fatalf("history succeeded: %v", history.AccountsSucceeded)
	}
	if len(history.AccountsFailed) != 1 || history.AccountsFailed[0] != 2 {
		t.Fatalf("history failed: %v", history.AccountsFailed)
	}
	if history.ErrorMessages[2] != "budget too low" {
		t.Fatalf("history error messages: %v", history.ErrorMessages)
	}
}

// TestBulkLaunchAccountNotFound checks that an unknown account id is
// absorbed as a failure record without touching the platform.
func TestBulkLaunchAccountNotFound(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(7)).
		Return(nil, nil)
	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform {
		t.Fatal("platform client must not be created for a missing account")
		return nil
	})

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{7},
		Campaign:   domain.CampaignSpec{Name: "c"},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Error != "Account not found" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// TestBulkLaunchFullChain launches campaign, ad set and ad in one account
// and checks the ids thread through the chain.
func TestBulkLaunchFullChain(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(1)).
		Return(resolvedAccount(1, 9001, "Alpha", "tok-a"), nil)

	platform.EXPECT().
		CreateCampaign(mock.Anything, int64(9001), mock.Anything).
		Return(int64(100), nil)
	platform.EXPECT().
		CreateAdSet(mock.Anything, int64(9001), int64(100), mock.Anything).
		Return(int64(200), nil)
	platform.EXPECT().
		CreateAd(mock.Anything, int64(9001), int64(200), mock.Anything).
		Return(int64(300), nil)

	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return platform })

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{1},
		Campaign:   domain.CampaignSpec{Name: "c"},
		AdSet:      &domain.AdSetSpec{Name: "as"},
		Ad:         &domain.AdSpec{Name: "a"},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}
	if len(result.Succeeded) != 1 {
		t.Fatalf("expected 1 success, got %+v", result)
	}
	s := result.Succeeded[0]
	if s.CampaignID != 100 || s.AdSetID == nil || *s.AdSetID != 200 || s.AdID == nil || *s.AdID != 300 {
		t.Fatalf("unexpected chain ids: %+v", s)
	}
}

// TestBulkLaunchAdSetRejected checks that a platform rejection of the ad
// set leaves the account succeeded with the sub-step error attached and
// skips the ad stage.
func TestBulkLaunchAdSetRejected(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(1)).
		Return(resolvedAccount(1, 9001, "Alpha", "tok-a"), nil)

	platform.EXPECT().
		CreateCampaign(mock.Anything, int64(9001), mock.Anything).
		Return(int64(100), nil)
	platform.EXPECT().
		CreateAdSet(mock.Anything, int64(9001), int64(100), mock.Anything).
		Return(int64(0), &newsbreak.APIError{Code: 40002, Message: "invalid targeting"})

	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return platform })

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{1},
		Campaign:   domain.CampaignSpec{Name: "c"},
		AdSet:      &domain.AdSetSpec{Name: "as"},
		Ad:         &domain.AdSpec{Name: "a"},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}
	if len(result.Succeeded) != 1 || len(result.Failed) != 0 {
		t.Fatalf("expected success with sub-step error, got %+v", result)
	}
	s := result.Succeeded[0]
	if s.CampaignID != 100 || s.AdSetID != nil || s.AdSetError != "invalid targeting" {
		t.Fatalf("unexpected record: %+v", s)
	}
}

// TestBulkLaunchTransportError checks that a transport failure inside the
// chain fails the whole account.
func TestBulkLaunchTransportError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	platform := mocks.NewMockPlatform(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(1)).
		Return(resolvedAccount(1, 9001, "Alpha", "tok-a"), nil)

	platform.EXPECT().
		CreateCampaign(mock.Anything, int64(9001), mock.Anything).
		Return(int64(100), nil)
	platform.EXPECT().
		CreateAdSet(mock.Anything, int64(9001), int64(100), mock.Anything).
		Return(int64(0), errors.New("connection reset"))

	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return platform })

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{1},
		Campaign:   domain.CampaignSpec{Name: "c"},
		AdSet:      &domain.AdSetSpec{Name: "as"},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}
	if len(result.Succeeded) != 0 || len(result.Failed) != 1 {
		t.Fatalf("expected a single failure, got %+v", result)
	}
	if result.Failed[0].Error != "connection reset" {
		t.Fatalf("unexpected failure: %+v", result.Failed[0])
	}
}

// TestBulkLaunchEmptyTargets checks that an empty target list still writes
// an empty history record whose array fields are non-nil slices; a nil
// slice would reach the NOT NULL array columns as SQL NULL.
func TestBulkLaunchEmptyTargets(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	var history domain.LaunchHistory
	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Run(func(_ context.Context, h domain.LaunchHistory) { history = h }).
		Return(nil)

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return nil })

	result, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		Campaign: domain.CampaignSpec{Name: "c"},
	})
	if err != nil {
		t.Fatalf("BulkLaunch error: %v", err)
	}
	if len(result.Succeeded) != 0 || len(result.Failed) != 0 {
		t.Fatalf("expected empty partition, got %+v", result)
	}
	if len(history.AccountsSucceeded) != 0 || len(history.AccountsFailed) != 0 {
		t.Fatalf("expected empty history, got %+v", history)
	}
	if history.AccountsTargeted == nil || history.AccountsSucceeded == nil || history.AccountsFailed == nil {
		t.Fatalf("history array fields must be non-nil slices: %+v", history)
	}
}

// TestBulkLaunchHistoryError checks that a history persistence failure is
// the one error that escapes to the caller.
func TestBulkLaunchHistoryError(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		GetAccount(mock.Anything, int64(1)).
		Return(nil, nil)
	repo.EXPECT().
		InsertLaunchHistory(mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	svc := NewLaunchUseCase(repo, func(string) port.Platform { return nil })

	_, err := svc.BulkLaunch(context.Background(), port.BulkLaunchRequest{
		AccountIDs: []int64{1},
		Campaign:   domain.CampaignSpec{Name: "c"},
	})
	if err == nil {
		t.Fatal("expected error from history insert")
	}
}
