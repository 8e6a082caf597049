package usecase

import (
	"context"
	"errors"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// LaunchUseCase fans one campaign specification out across many ad
// accounts. Accounts are processed strictly one at a time in input order;
// every per-account error is absorbed into a failure record so a bad
// account never aborts the rest of the loop.
type LaunchUseCase struct {
	repo    port.Repository
	clients port.PlatformFactory
}

// NewLaunchUseCase creates the orchestrator with its storage and the
// factory used to bind a platform client to each account's credential.
func NewLaunchUseCase(repo port.Repository, clients port.PlatformFactory) *LaunchUseCase {
	return &LaunchUseCase{repo: repo, clients: clients}
}

// BulkLaunch resolves every target account, drives the campaign → ad set →
// ad creation chain per account and records one outcome each. After the
// loop it persists a single launch history record; that insert is the only
// error that escapes to the caller.
func (u *LaunchUseCase) BulkLaunch(ctx context.Context, req port.BulkLaunchRequest) (*port.BulkLaunchResult, error) {
	result := &port.BulkLaunchResult{
		Succeeded: []domain.LaunchSuccess{},
		Failed:    []domain.LaunchFailure{},
	}

	for _, accountID := range req.AccountIDs {
		account, err := u.repo.GetAccount(ctx, accountID)
		if err != nil {
			result.Failed = append(result.Failed, domain.LaunchFailure{
				AccountID: accountID,
				Error:     err.Error(),
			})
			continue
		}
		if account == nil {
			result.Failed = append(result.Failed, domain.LaunchFailure{
				AccountID: accountID,
				Error:     "Account not found",
			})
			continue
		}
		u.launchOne(ctx, account, req, result)
	}

	// Array columns are NOT NULL; a nil slice would encode as SQL NULL, so
	// the targeted list is always a materialised copy.
	history := domain.LaunchHistory{
		CampaignName:      req.Campaign.Name,
		AccountsTargeted:  append(make([]int64, 0, len(req.AccountIDs)), req.AccountIDs...),
		AccountsSucceeded: make([]int64, 0, len(result.Succeeded)),
		AccountsFailed:    make([]int64, 0, len(result.Failed)),
		ErrorMessages:     make(map[int64]string, len(result.Failed)),
	}
	for _, s := range result.Succeeded {
		history.AccountsSucceeded = append(history.AccountsSucceeded, s.AccountID)
	}
	for _, f := range result.Failed {
		history.AccountsFailed = append(history.AccountsFailed, f.AccountID)
		history.ErrorMessages[f.AccountID] = f.Error
	}
	if err := u.repo.InsertLaunchHistory(ctx, history); err != nil {
		return nil, err
	}
	return result, nil
}

// launchOne runs the creation chain for a single resolved account and
// appends exactly one record to result. An application error on campaign
// creation or any transport error fails the account; an application error
// on the ad set or ad stage leaves the account succeeded with the sub-step
// error attached.
func (u *LaunchUseCase) launchOne(ctx context.Context, account *domain.ResolvedAccount, req port.BulkLaunchRequest, result *port.BulkLaunchResult) {
	fail := func(err error) {
		result.Failed = append(result.Failed, domain.LaunchFailure{
			AccountID:   account.ID,
			AccountName: account.Name,
			Error:       err.Error(),
		})
	}

	client := u.clients(account.Token)

	campaignID, err := client.CreateCampaign(ctx, account.RemoteID, req.Campaign)
	if err != nil {
		var perr port.PlatformError
		if errors.As(err, &perr) {
			result.Failed = append(result.Failed, domain.LaunchFailure{
				AccountID:   account.ID,
				AccountName: account.Name,
				Error:       perr.ErrorMessage(),
			})
		} else {
			fail(err)
		}
		return
	}

	rec := domain.LaunchSuccess{
		AccountID:   account.ID,
		AccountName: account.Name,
		CampaignID:  campaignID,
	}

	if req.AdSet != nil {
		adsetID, err := client.CreateAdSet(ctx, account.RemoteID, campaignID, *req.AdSet)
		if err != nil {
			var perr port.PlatformError
			if !errors.As(err, &perr) {
				fail(err)
				return
			}
			rec.AdSetError = perr.ErrorMessage()
		} else {
			rec.AdSetID = &adsetID

			if req.Ad != nil {
				adID, err := client.CreateAd(ctx, account.RemoteID, adsetID, *req.Ad)
				if err != nil {
					var perr port.PlatformError
					if !errors.As(err, &perr) {
						fail(err)
						return
					}
					rec.AdError = perr.ErrorMessage()
				} else {
					rec.AdID = &adID
				}
			}
		}
	}

	result.Succeeded = append(result.Succeeded, rec)
}
