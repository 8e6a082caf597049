package port

import (
	"context"

	"ad-launcher/internal/core/domain"
)

// LaunchUseCase is the primary port of the bulk-launch orchestrator.
type LaunchUseCase interface {
	// BulkLaunch replays one campaign specification across every target
	// account, each resolved independently, and persists one launch history
	// record after all accounts reach a terminal outcome. Per-account
	// errors never escape; only a history persistence failure aborts the
	// call.
	BulkLaunch(ctx context.Context, req BulkLaunchRequest) (*BulkLaunchResult, error)
}

// ManagementUseCase covers the operator-facing surface around the
// orchestrator: credential and template bookkeeping, the account cache and
// single-account pass-through operations.
type ManagementUseCase interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	CreateOrganization(ctx context.Context, name, description string) (*domain.Organization, error)
	DeleteOrganization(ctx context.Context, id int64) error

	ListTokens(ctx context.Context) ([]domain.AccessToken, error)
	CreateToken(ctx context.Context, name, token string, organizationID *int64) (*domain.AccessToken, error)
	DeleteToken(ctx context.Context, id int64) error

	// RefreshAccounts fetches the remote account list for a token, rebuilds
	// the cache rows for that token wholesale and updates the token's
	// last-used timestamp. It returns the fetched accounts.
	RefreshAccounts(ctx context.Context, tokenID int64) ([]domain.RemoteAccount, error)
	ListAccounts(ctx context.Context) ([]domain.AccountInfo, error)

	// GetAccountCampaigns, GetAccountAdSets and GetAccountAds proxy list
	// calls for a single cached account and return the platform's data
	// payload unchanged.
	GetAccountCampaigns(ctx context.Context, accountID int64) (map[string]any, error)
	GetAccountAdSets(ctx context.Context, accountID int64, campaignID *int64) (map[string]any, error)
	GetAccountAds(ctx context.Context, accountID int64, adsetID *int64) (map[string]any, error)

	// CreateCampaign, CreateAdSet and CreateAd create one object in a single
	// cached account and return the created remote id.
	CreateCampaign(ctx context.Context, accountID int64, spec domain.CampaignSpec) (int64, error)
	CreateAdSet(ctx context.Context, accountID, campaignID int64, spec domain.AdSetSpec) (int64, error)
	CreateAd(ctx context.Context, accountID, adsetID int64, spec domain.AdSpec) (int64, error)

	ListTemplates(ctx context.Context) ([]domain.CampaignTemplate, error)
	CreateTemplate(ctx context.Context, t domain.CampaignTemplate) (*domain.CampaignTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error

	ListLaunchHistory(ctx context.Context) ([]domain.LaunchHistory, error)
	GetStats(ctx context.Context) (*StatsResp, error)
}

// BulkLaunchRequest is the input of one bulk launch. Ad is only honoured
// when AdSet is present; an ad cannot exist without a parent ad set.
type BulkLaunchRequest struct {
	AccountIDs []int64             `json:"account_ids"`
	Campaign   domain.CampaignSpec `json:"campaign"`
	AdSet      *domain.AdSetSpec   `json:"ad_set,omitempty"`
	Ad         *domain.AdSpec      `json:"ad,omitempty"`
}

// BulkLaunchResult partitions the target accounts by outcome. Within each
// list entries keep the input ordering. Every target account appears in
// exactly one of the two lists.
type BulkLaunchResult struct {
	Succeeded []domain.LaunchSuccess `json:"succeeded"`
	Failed    []domain.LaunchFailure `json:"failed"`
}
