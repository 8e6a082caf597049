package port

import (
	"context"

	"ad-launcher/internal/core/domain"
)

// Platform is the subset of remote ad-platform operations the use cases
// drive. One Platform instance is bound to one credential. Application
// errors reported by the platform surface as *newsbreak.APIError values;
// transport failures surface as ordinary errors.
type Platform interface {
	// CreateCampaign creates a campaign in the remote account and returns
	// the created campaign id.
	CreateCampaign(ctx context.Context, accountID int64, spec domain.CampaignSpec) (int64, error)
	// CreateAdSet creates an ad set under the campaign and returns its id.
	CreateAdSet(ctx context.Context, accountID, campaignID int64, spec domain.AdSetSpec) (int64, error)
	// CreateAd creates an ad under the ad set and returns its id.
	CreateAd(ctx context.Context, accountID, adsetID int64, spec domain.AdSpec) (int64, error)

	// ListAdAccounts returns the accounts visible to the bound credential,
	// normalised across the platform's response shapes.
	ListAdAccounts(ctx context.Context) ([]domain.RemoteAccount, error)
	// GetCampaigns returns one page of campaigns as the raw data payload.
	GetCampaigns(ctx context.Context, accountID int64, page, pageSize int) (map[string]any, error)
	// GetAdSets returns one page of ad sets, optionally scoped to a campaign.
	GetAdSets(ctx context.Context, accountID int64, campaignID *int64, page, pageSize int) (map[string]any, error)
	// GetAds returns one page of ads, optionally scoped to an ad set.
	GetAds(ctx context.Context, accountID int64, adsetID *int64, page, pageSize int) (map[string]any, error)
}

// PlatformFactory builds a Platform bound to the given credential. The
// orchestrator constructs one client per resolved account.
type PlatformFactory func(token string) Platform

// PlatformError is the application-level error a Platform reports when the
// remote API answered with a non-zero envelope code. Callers use errors.As
// against this interface to tell application failures from transport
// failures.
type PlatformError interface {
	error
	ErrorCode() int
	ErrorMessage() string
}
