package newsbreak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ad-launcher/internal/core/domain"
)

// DefaultBaseURL is the production endpoint of the NewsBreak business API.
const DefaultBaseURL = "https://business.newsbreak.com/business-api/v1"

// APIError is an application-level failure reported by the platform: the
// HTTP exchange succeeded but the response envelope carried a non-zero code.
// Transport failures are returned as ordinary errors instead.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsbreak: code %d: %s", e.Code, e.Message)
}

// ErrorCode implements port.PlatformError.
func (e *APIError) ErrorCode() int { return e.Code }

// ErrorMessage implements port.PlatformError.
func (e *APIError) ErrorMessage() string { return e.Message }

// Client wraps the NewsBreak advertising API. One instance is bound to one
// access token, attached to every request as the Access-Token header. The
// client performs no retry and no rate limiting; it decides application
// success once, at the envelope, and hands callers either decoded data or
// an *APIError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client bound to the given access token. An empty
// baseURL falls back to DefaultBaseURL; a zero timeout disables the client
// side deadline.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the platform's uniform response wrapper. The error message
// field name varies across endpoints.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
	ErrMsg  string          `json:"errMsg"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) errorMessage() string {
	for _, m := range []string{e.Message, e.Msg, e.ErrMsg} {
		if m != "" {
			return m
		}
	}
	return fmt.Sprintf("API error code: %d", e.Code)
}

// call performs one JSON request against the API and decodes the envelope.
// A non-zero envelope code becomes an *APIError. When out is non-nil the
// data payload is unmarshalled into it.
func (c *Client) call(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp.Body, out)
}

func (c *Client) decode(r io.Reader, out any) error {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code != 0 {
		return &APIError{Code: env.Code, Message: env.errorMessage()}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// ==================== Account management ====================

// ListAdAccounts returns the ad accounts visible to the bound token. The
// platform answers with either organizations carrying nested adAccounts
// lists or a flat account list; both shapes collapse into RemoteAccount
// rows. An account without a status defaults to "active".
func (c *Client) ListAdAccounts(ctx context.Context) ([]domain.RemoteAccount, error) {
	var data json.RawMessage
	if err := c.call(ctx, http.MethodGet, "/adAccount/getList", nil, &data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '{' {
		var nested struct {
			List []struct {
				ID         int64  `json:"id"`
				Name       string `json:"name"`
				AdAccounts []struct {
					ID     int64  `json:"id"`
					Name   string `json:"name"`
					Status string `json:"status"`
				} `json:"adAccounts"`
			} `json:"list"`
		}
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("decode account list: %w", err)
		}
		var accounts []domain.RemoteAccount
		for _, org := range nested.List {
			for _, acc := range org.AdAccounts {
				accounts = append(accounts, domain.RemoteAccount{
					ID:      acc.ID,
					Name:    acc.Name,
					Status:  defaultStatus(acc.Status),
					OrgID:   org.ID,
					OrgName: org.Name,
				})
			}
		}
		return accounts, nil
	}
	var flat []domain.RemoteAccount
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode account list: %w", err)
	}
	for i := range flat {
		flat[i].Status = defaultStatus(flat[i].Status)
	}
	return flat, nil
}

func defaultStatus(s string) string {
	if s == "" {
		return "active"
	}
	return s
}

// GetAccountBudget returns the spending cap information of an account.
func (c *Client) GetAccountBudget(ctx context.Context, accountID int64) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/balance/getAccountBudgetInfo", map[string]any{
		"ad_account_id": accountID,
	}, &out)
	return out, err
}

// UpdateAccountBudget updates the account spending cap. capType is
// domain.BudgetCapDaily or domain.BudgetCapLifetime.
func (c *Client) UpdateAccountBudget(ctx context.Context, accountID int64, cap float64, capType int) error {
	return c.call(ctx, http.MethodPost, "/balance/updateAccountsBudget", map[string]any{
		"ad_account_id":   accountID,
		"budget_cap":      cap,
		"budget_cap_type": capType,
	}, nil)
}

// ==================== Campaign management ====================

// GetCampaigns returns one page of campaigns as the raw data payload.
func (c *Client) GetCampaigns(ctx context.Context, accountID int64, page, pageSize int) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/campaign/getList", map[string]any{
		"ad_account_id": accountID,
		"page":          page,
		"page_size":     pageSize,
	}, &out)
	return out, err
}

// CreateCampaign creates a campaign and returns the created campaign id.
// Zero-valued budgets are omitted from the request body.
func (c *Client) CreateCampaign(ctx context.Context, accountID int64, spec domain.CampaignSpec) (int64, error) {
	payload := map[string]any{
		"ad_account_id": accountID,
		"name":          spec.Name,
		"objective":     spec.Objective,
		"status":        spec.Status,
	}
	if spec.DailyBudget != 0 {
		payload["daily_budget"] = spec.DailyBudget
	}
	if spec.LifetimeBudget != 0 {
		payload["lifetime_budget"] = spec.LifetimeBudget
	}
	var out struct {
		CampaignID int64 `json:"campaign_id"`
	}
	if err := c.call(ctx, http.MethodPost, "/campaign/create", payload, &out); err != nil {
		return 0, err
	}
	return out.CampaignID, nil
}

// CampaignUpdate carries the mutable campaign fields. Zero values are left
// untouched on the platform side.
type CampaignUpdate struct {
	Name           string
	DailyBudget    float64
	LifetimeBudget float64
}

// UpdateCampaign applies the non-zero fields of upd to a campaign.
func (c *Client) UpdateCampaign(ctx context.Context, accountID, campaignID int64, upd CampaignUpdate) error {
	payload := map[string]any{
		"ad_account_id": accountID,
		"campaign_id":   campaignID,
	}
	if upd.Name != "" {
		payload["name"] = upd.Name
	}
	if upd.DailyBudget != 0 {
		payload["daily_budget"] = upd.DailyBudget
	}
	if upd.LifetimeBudget != 0 {
		payload["lifetime_budget"] = upd.LifetimeBudget
	}
	return c.call(ctx, http.MethodPost, "/campaign/update", payload, nil)
}

// UpdateCampaignStatus switches a campaign on or off.
func (c *Client) UpdateCampaignStatus(ctx context.Context, accountID, campaignID int64, status int) error {
	return c.call(ctx, http.MethodPost, "/campaign/updateStatus", map[string]any{
		"ad_account_id": accountID,
		"campaign_id":   campaignID,
		"status":        status,
	}, nil)
}

// DeleteCampaign deletes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, accountID, campaignID int64) error {
	return c.call(ctx, http.MethodPost, "/campaign/delete", map[string]any{
		"ad_account_id": accountID,
		"campaign_id":   campaignID,
	}, nil)
}

// ==================== Ad set management ====================

// GetAdSets returns one page of ad sets, optionally scoped to a campaign.
func (c *Client) GetAdSets(ctx context.Context, accountID int64, campaignID *int64, page, pageSize int) (map[string]any, error) {
	payload := map[string]any{
		"ad_account_id": accountID,
		"page":          page,
		"page_size":     pageSize,
	}
	if campaignID != nil {
		payload["campaign_id"] = *campaignID
	}
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/adset/getList", payload, &out)
	return out, err
}

// CreateAdSet creates an ad set under the campaign and returns its id. The
// targeting payload passes through verbatim; optional schedule and budget
// fields are omitted when zero.
func (c *Client) CreateAdSet(ctx context.Context, accountID, campaignID int64, spec domain.AdSetSpec) (int64, error) {
	payload := map[string]any{
		"ad_account_id":     accountID,
		"campaign_id":       campaignID,
		"name":              spec.Name,
		"billing_event":     spec.BillingEvent,
		"bid_amount":        spec.BidAmount,
		"optimization_goal": spec.OptimizationGoal,
		"targeting":         spec.Targeting,
		"status":            spec.Status,
		"pacing_type":       spec.PacingType,
	}
	if spec.StartTime != "" {
		payload["start_time"] = spec.StartTime
	}
	if spec.EndTime != "" {
		payload["end_time"] = spec.EndTime
	}
	if spec.DailyBudget != 0 {
		payload["daily_budget"] = spec.DailyBudget
	}
	if spec.LifetimeBudget != 0 {
		payload["lifetime_budget"] = spec.LifetimeBudget
	}
	var out struct {
		AdSetID int64 `json:"adset_id"`
	}
	if err := c.call(ctx, http.MethodPost, "/adset/create", payload, &out); err != nil {
		return 0, err
	}
	return out.AdSetID, nil
}

// AdSetUpdate carries the mutable ad set fields.
type AdSetUpdate struct {
	Name           string
	BidAmount      float64
	Targeting      map[string]any
	DailyBudget    float64
	LifetimeBudget float64
	StartTime      string
	EndTime        string
}

// UpdateAdSet applies the non-zero fields of upd to an ad set.
func (c *Client) UpdateAdSet(ctx context.Context, accountID, adsetID int64, upd AdSetUpdate) error {
	payload := map[string]any{
		"ad_account_id": accountID,
		"adset_id":      adsetID,
	}
	if upd.Name != "" {
		payload["name"] = upd.Name
	}
	if upd.BidAmount != 0 {
		payload["bid_amount"] = upd.BidAmount
	}
	if upd.Targeting != nil {
		payload["targeting"] = upd.Targeting
	}
	if upd.DailyBudget != 0 {
		payload["daily_budget"] = upd.DailyBudget
	}
	if upd.LifetimeBudget != 0 {
		payload["lifetime_budget"] = upd.LifetimeBudget
	}
	if upd.StartTime != "" {
		payload["start_time"] = upd.StartTime
	}
	if upd.EndTime != "" {
		payload["end_time"] = upd.EndTime
	}
	return c.call(ctx, http.MethodPost, "/adset/update", payload, nil)
}

// UpdateAdSetStatus switches an ad set on or off.
func (c *Client) UpdateAdSetStatus(ctx context.Context, accountID, adsetID int64, status int) error {
	return c.call(ctx, http.MethodPost, "/adset/updateStatus", map[string]any{
		"ad_account_id": accountID,
		"adset_id":      adsetID,
		"status":        status,
	}, nil)
}

// DeleteAdSet deletes an ad set.
func (c *Client) DeleteAdSet(ctx context.Context, accountID, adsetID int64) error {
	return c.call(ctx, http.MethodPost, "/adset/delete", map[string]any{
		"ad_account_id": accountID,
		"adset_id":      adsetID,
	}, nil)
}

// ==================== Ad management ====================

// GetAds returns one page of ads, optionally scoped to an ad set.
func (c *Client) GetAds(ctx context.Context, accountID int64, adsetID *int64, page, pageSize int) (map[string]any, error) {
	payload := map[string]any{
		"ad_account_id": accountID,
		"page":          page,
		"page_size":     pageSize,
	}
	if adsetID != nil {
		payload["adset_id"] = *adsetID
	}
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/ad/getList", payload, &out)
	return out, err
}

// CreateAd creates an ad under the ad set and returns its id. The creative
// payload passes through verbatim.
func (c *Client) CreateAd(ctx context.Context, accountID, adsetID int64, spec domain.AdSpec) (int64, error) {
	payload := map[string]any{
		"ad_account_id": accountID,
		"adset_id":      adsetID,
		"name":          spec.Name,
		"creative":      spec.Creative,
		"status":        spec.Status,
	}
	if spec.TrackingURL != "" {
		payload["tracking_url"] = spec.TrackingURL
	}
	var out struct {
		AdID int64 `json:"ad_id"`
	}
	if err := c.call(ctx, http.MethodPost, "/ad/create", payload, &out); err != nil {
		return 0, err
	}
	return out.AdID, nil
}

// AdUpdate carries the mutable ad fields.
type AdUpdate struct {
	Name        string
	Creative    map[string]any
	TrackingURL string
}

// UpdateAd applies the non-zero fields of upd to an ad.
func (c *Client) UpdateAd(ctx context.Context, accountID, adID int64, upd AdUpdate) error {
	payload := map[string]any{
		"ad_account_id": accountID,
		"ad_id":         adID,
	}
	if upd.Name != "" {
		payload["name"] = upd.Name
	}
	if upd.Creative != nil {
		payload["creative"] = upd.Creative
	}
	if upd.TrackingURL != "" {
		payload["tracking_url"] = upd.TrackingURL
	}
	return c.call(ctx, http.MethodPost, "/ad/update", payload, nil)
}

// UpdateAdStatus switches an ad on or off.
func (c *Client) UpdateAdStatus(ctx context.Context, accountID, adID int64, status int) error {
	return c.call(ctx, http.MethodPost, "/ad/updateStatus", map[string]any{
		"ad_account_id": accountID,
		"ad_id":         adID,
		"status":        status,
	}, nil)
}

// DeleteAd deletes an ad.
func (c *Client) DeleteAd(ctx context.Context, accountID, adID int64) error {
	return c.call(ctx, http.MethodPost, "/ad/delete", map[string]any{
		"ad_account_id": accountID,
		"ad_id":         adID,
	}, nil)
}

// UploadAsset uploads an image or video from the local filesystem as a
// multipart form. Unlike the JSON calls it sends no JSON body; the token
// header stays the same.
func (c *Client) UploadAsset(ctx context.Context, accountID int64, path string, assetType int) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, f); err != nil {
		return nil, err
	}
	if err = w.WriteField("ad_account_id", strconv.FormatInt(accountID, 10)); err != nil {
		return nil, err
	}
	if err = w.WriteField("asset_type", strconv.Itoa(assetType)); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/asset/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Access-Token", c.token)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out map[string]any
	if err = c.decode(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ==================== Reporting ====================

// ReportRequest describes a report over a date range. Filters are optional.
type ReportRequest struct {
	Name       string
	DateRange  map[string]string
	Dimensions []string
	Metrics    []string
	Filters    map[string]any
}

func (r ReportRequest) payload(accountID int64, withName bool) map[string]any {
	payload := map[string]any{
		"ad_account_id": accountID,
		"date_range":    r.DateRange,
		"dimensions":    r.Dimensions,
		"metrics":       r.Metrics,
	}
	if withName {
		payload["name"] = r.Name
	}
	if r.Filters != nil {
		payload["filters"] = r.Filters
	}
	return payload
}

// CreateReport creates a saved custom report.
func (c *Client) CreateReport(ctx context.Context, accountID int64, req ReportRequest) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/report/create", req.payload(accountID, true), &out)
	return out, err
}

// RunSyncReport runs a report synchronously and returns its rows.
func (c *Client) RunSyncReport(ctx context.Context, accountID int64, req ReportRequest) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/report/sync", req.payload(accountID, false), &out)
	return out, err
}

// GetReport fetches a saved report by id.
func (c *Client) GetReport(ctx context.Context, reportID int64) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodGet, fmt.Sprintf("/report/%d", reportID), nil, &out)
	return out, err
}

// ==================== Events ====================

// GetEvents returns the conversion events configured for an account.
func (c *Client) GetEvents(ctx context.Context, accountID int64) (map[string]any, error) {
	var out map[string]any
	err := c.call(ctx, http.MethodPost, "/event/getList", map[string]any{
		"ad_account_id": accountID,
	}, &out)
	return out, err
}
