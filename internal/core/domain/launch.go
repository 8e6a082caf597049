package domain

import "time"

// LaunchSuccess is the per-account outcome of a bulk launch whose campaign
// creation succeeded. AdSetID and AdID stay nil when the corresponding stage
// was not requested or did not succeed. AdSetError and AdError carry the
// remote error message when a stage after the campaign failed with an
// application error; the account still counts as succeeded.
type LaunchSuccess struct {
	AccountID   int64  `json:"account_id"`
	AccountName string `json:"account_name"`
	CampaignID  int64  `json:"campaign_id"`
	AdSetID     *int64 `json:"adset_id,omitempty"`
	AdID        *int64 `json:"ad_id,omitempty"`
	AdSetError  string `json:"adset_error,omitempty"`
	AdError     string `json:"ad_error,omitempty"`
}

// LaunchFailure is the per-account outcome when no campaign was created.
type LaunchFailure struct {
	AccountID   int64  `json:"account_id"`
	AccountName string `json:"account_name,omitempty"`
	Error       string `json:"error"`
}

// LaunchHistory is the immutable audit record of one bulk launch. It is
// written once after every target account has a terminal outcome and is
// never updated.
type LaunchHistory struct {
	ID                int64            `json:"id"`
	CampaignName      string           `json:"campaign_name"`
	AccountsTargeted  []int64          `json:"accounts_targeted"`
	AccountsSucceeded []int64          `json:"accounts_succeeded"`
	AccountsFailed    []int64          `json:"accounts_failed"`
	ErrorMessages     map[int64]string `json:"error_messages"`
	LaunchedAt        time.Time        `json:"launched_at"`
}
