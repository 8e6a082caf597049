package usecase

import (
	"context"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// historyPageSize caps the launch history listing.
const historyPageSize = 50

// ManagementUseCase covers the operator-facing surface around the
// orchestrator: organizations, tokens, templates, the account cache and
// single-account pass-through calls against the remote platform.
type ManagementUseCase struct {
	repo    port.Repository
	clients port.PlatformFactory
}

// NewManagementUseCase creates a new management usecase.
func NewManagementUseCase(repo port.Repository, clients port.PlatformFactory) *ManagementUseCase {
	return &ManagementUseCase{repo: repo, clients: clients}
}

func (u *ManagementUseCase) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return u.repo.ListOrganizations(ctx)
}

func (u *ManagementUseCase) CreateOrganization(ctx context.Context, name, description string) (*domain.Organization, error) {
	return u.repo.CreateOrganization(ctx, name, description)
}

func (u *ManagementUseCase) DeleteOrganization(ctx context.Context, id int64) error {
	return u.repo.DeleteOrganization(ctx, id)
}

func (u *ManagementUseCase) ListTokens(ctx context.Context) ([]domain.AccessToken, error) {
	return u.repo.ListTokens(ctx)
}

func (u *ManagementUseCase) CreateToken(ctx context.Context, name, token string, organizationID *int64) (*domain.AccessToken, error) {
	return u.repo.CreateToken(ctx, name, token, organizationID)
}

func (u *ManagementUseCase) DeleteToken(ctx context.Context, id int64) error {
	return u.repo.DeleteToken(ctx, id)
}

// RefreshAccounts pulls the remote account list for a token, rebuilds the
// cache rows for that token wholesale and stamps the token as used. The
// token row itself stays untouched otherwise.
func (u *ManagementUseCase) RefreshAccounts(ctx context.Context, tokenID int64) ([]domain.RemoteAccount, error) {
	token, err := u.repo.GetToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, port.ErrNotFound
	}

	client := u.clients(token.Token)
	accounts, err := client.ListAdAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if err = u.repo.ReplaceAccounts(ctx, tokenID, accounts); err != nil {
		return nil, err
	}
	if err = u.repo.TouchToken(ctx, tokenID); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (u *ManagementUseCase) ListAccounts(ctx context.Context) ([]domain.AccountInfo, error) {
	return u.repo.ListAccounts(ctx)
}

// resolve loads a cached account with its credential, mapping a missing row
// to port.ErrNotFound.
func (u *ManagementUseCase) resolve(ctx context.Context, accountID int64) (*domain.ResolvedAccount, error) {
	account, err := u.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, port.ErrNotFound
	}
	return account, nil
}

func (u *ManagementUseCase) GetAccountCampaigns(ctx context.Context, accountID int64) (map[string]any, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return u.clients(account.Token).GetCampaigns(ctx, account.RemoteID, 1, 100)
}

func (u *ManagementUseCase) GetAccountAdSets(ctx context.Context, accountID int64, campaignID *int64) (map[string]any, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return u.clients(account.Token).GetAdSets(ctx, account.RemoteID, campaignID, 1, 100)
}

func (u *ManagementUseCase) GetAccountAds(ctx context.Context, accountID int64, adsetID *int64) (map[string]any, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return u.clients(account.Token).GetAds(ctx, account.RemoteID, adsetID, 1, 100)
}

func (u *ManagementUseCase) CreateCampaign(ctx context.Context, accountID int64, spec domain.CampaignSpec) (int64, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return u.clients(account.Token).CreateCampaign(ctx, account.RemoteID, spec)
}

func (u *ManagementUseCase) CreateAdSet(ctx context.Context, accountID, campaignID int64, spec domain.AdSetSpec) (int64, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return u.clients(account.Token).CreateAdSet(ctx, account.RemoteID, campaignID, spec)
}

func (u *ManagementUseCase) CreateAd(ctx context.Context, accountID, adsetID int64, spec domain.AdSpec) (int64, error) {
	account, err := u.resolve(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return u.clients(account.Token).CreateAd(ctx, account.RemoteID, adsetID, spec)
}

func (u *ManagementUseCase) ListTemplates(ctx context.Context) ([]domain.CampaignTemplate, error) {
	return u.repo.ListTemplates(ctx)
}

func (u *ManagementUseCase) CreateTemplate(ctx context.Context, t domain.CampaignTemplate) (*domain.CampaignTemplate, error) {
	return u.repo.CreateTemplate(ctx, t)
}

func (u *ManagementUseCase) DeleteTemplate(ctx context.Context, id int64) error {
	return u.repo.DeleteTemplate(ctx, id)
}

func (u *ManagementUseCase) ListLaunchHistory(ctx context.Context) ([]domain.LaunchHistory, error) {
	return u.repo.ListLaunchHistory(ctx, historyPageSize)
}

func (u *ManagementUseCase) GetStats(ctx context.Context) (*port.StatsResp, error) {
	return u.repo.CountStats(ctx)
}
