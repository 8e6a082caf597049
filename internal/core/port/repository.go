package port

import (
	"context"
	"errors"

	"ad-launcher/internal/core/domain"
)

var ErrNotFound = errors.New("not found")

// Repository defines the persistence layer for the launcher. It is an
// outbound port in hexagonal architecture. Every storage round trip is an
// explicit method call; there is no lazy relation traversal.
type Repository interface {
	// ListOrganizations returns all organizations.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	// CreateOrganization inserts an organization and returns it with the
	// assigned id and timestamps.
	CreateOrganization(ctx context.Context, name, description string) (*domain.Organization, error)
	// DeleteOrganization removes an organization. ErrNotFound when absent.
	DeleteOrganization(ctx context.Context, id int64) error

	// ListTokens returns all stored access tokens.
	ListTokens(ctx context.Context) ([]domain.AccessToken, error)
	// CreateToken stores a new access token.
	CreateToken(ctx context.Context, name, token string, organizationID *int64) (*domain.AccessToken, error)
	// GetToken returns a token by id, or nil when absent.
	GetToken(ctx context.Context, id int64) (*domain.AccessToken, error)
	// DeleteToken removes a token. ErrNotFound when absent.
	DeleteToken(ctx context.Context, id int64) error
	// TouchToken sets the token's last-used timestamp to now.
	TouchToken(ctx context.Context, id int64) error

	// ListAccounts returns all cached accounts with token and organization
	// display fields attached.
	ListAccounts(ctx context.Context) ([]domain.AccountInfo, error)
	// GetAccount returns a cached account by local id together with its
	// credential, or nil when absent.
	GetAccount(ctx context.Context, id int64) (*domain.ResolvedAccount, error)
	// ReplaceAccounts deletes every cached account of the token and inserts
	// the given rows. The cache is rebuilt wholesale, never patched.
	ReplaceAccounts(ctx context.Context, tokenID int64, accounts []domain.RemoteAccount) error

	// ListTemplates returns all campaign templates.
	ListTemplates(ctx context.Context) ([]domain.CampaignTemplate, error)
	// CreateTemplate inserts a template and returns it with the assigned id.
	CreateTemplate(ctx context.Context, t domain.CampaignTemplate) (*domain.CampaignTemplate, error)
	// DeleteTemplate removes a template. ErrNotFound when absent.
	DeleteTemplate(ctx context.Context, id int64) error

	// InsertLaunchHistory persists one bulk-launch audit record.
	InsertLaunchHistory(ctx context.Context, h domain.LaunchHistory) error
	// ListLaunchHistory returns the most recent records, newest first.
	ListLaunchHistory(ctx context.Context, limit int) ([]domain.LaunchHistory, error)

	// CountStats returns dashboard counters over the stored entities.
	CountStats(ctx context.Context) (*StatsResp, error)
}

// StatsResp holds dashboard counters. Tokens counts active tokens only.
type StatsResp struct {
	Accounts      int64 `json:"total_accounts"`
	Tokens        int64 `json:"total_tokens"`
	Organizations int64 `json:"total_organizations"`
	Templates     int64 `json:"total_templates"`
	Launches      int64 `json:"total_launches"`
}
