package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-launcher/internal/core/domain"
	"ad-launcher/internal/core/port"
)

// Store implements port.Repository using pgxpool for PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ListOrganizations returns all organizations ordered by id.
func (s *Store) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM organizations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Organization, error) {
		var o domain.Organization
		err := row.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt, &o.UpdatedAt)
		return o, err
	})
}

// CreateOrganization inserts an organization and returns the stored row.
func (s *Store) CreateOrganization(ctx context.Context, name, description string) (*domain.Organization, error) {
	var o domain.Organization
	o.Name = name
	o.Description = description
	err := s.pool.QueryRow(ctx,
		`INSERT INTO organizations (name, description) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		name, description).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrganization removes an organization by id.
func (s *Store) DeleteOrganization(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListTokens returns all access tokens ordered by id.
func (s *Store) ListTokens(ctx context.Context) ([]domain.AccessToken, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, organization_id, name, token, is_active, created_at, last_used FROM access_tokens ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanToken)
}

func scanToken(row pgx.CollectableRow) (domain.AccessToken, error) {
	var t domain.AccessToken
	err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Token, &t.IsActive, &t.CreatedAt, &t.LastUsed)
	return t, err
}

// CreateToken stores a new access token.
func (s *Store) CreateToken(ctx context.Context, name, token string, organizationID *int64) (*domain.AccessToken, error) {
	t := domain.AccessToken{Name: name, Token: token, OrganizationID: organizationID, IsActive: true}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO access_tokens (name, token, organization_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		name, token, organizationID).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetToken returns a token by id, or nil when it does not exist.
func (s *Store) GetToken(ctx context.Context, id int64) (*domain.AccessToken, error) {
	var t domain.AccessToken
	err := s.pool.QueryRow(ctx,
		`SELECT id, organization_id, name, token, is_active, created_at, last_used FROM access_tokens WHERE id = $1`, id).
		Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Token, &t.IsActive, &t.CreatedAt, &t.LastUsed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteToken removes a token by id.
func (s *Store) DeleteToken(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM access_tokens WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// TouchToken sets the token's last-used timestamp to the current time.
func (s *Store) TouchToken(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `UPDATE access_tokens SET last_used = $1 WHERE id = $2`, time.Now().UTC(), id)
	return err
}

// ListAccounts returns all cached accounts joined with their token and
// organization display fields.
func (s *Store) ListAccounts(ctx context.Context) ([]domain.AccountInfo, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT
            a.id, a.access_token_id, a.remote_account_id,
            COALESCE(a.name, ''), COALESCE(a.status, ''), a.cached_at,
            t.name, t.organization_id, COALESCE(o.name, '')
        FROM cached_ad_accounts a
        JOIN access_tokens t ON a.access_token_id = t.id
        LEFT JOIN organizations o ON t.organization_id = o.id
        ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountInfo, error) {
		var a domain.AccountInfo
		err := row.Scan(&a.ID, &a.TokenID, &a.RemoteID, &a.Name, &a.Status, &a.CachedAt,
			&a.TokenName, &a.OrganizationID, &a.OrganizationName)
		return a, err
	})
}

// GetAccount returns a cached account together with its credential. The
// join replaces the lazy token traversal of the relational mapping; one
// call yields everything a remote operation needs.
func (s *Store) GetAccount(ctx context.Context, id int64) (*domain.ResolvedAccount, error) {
	var a domain.ResolvedAccount
	err := s.pool.QueryRow(ctx, `
        SELECT a.id, a.access_token_id, a.remote_account_id,
               COALESCE(a.name, ''), COALESCE(a.status, ''), a.cached_at, t.token
        FROM cached_ad_accounts a
        JOIN access_tokens t ON a.access_token_id = t.id
        WHERE a.id = $1`, id).
		Scan(&a.ID, &a.TokenID, &a.RemoteID, &a.Name, &a.Status, &a.CachedAt, &a.Token)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ReplaceAccounts rebuilds the cached accounts of a token inside one
// transaction: delete everything, insert the fresh rows.
func (s *Store) ReplaceAccounts(ctx context.Context, tokenID int64, accounts []domain.RemoteAccount) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM cached_ad_accounts WHERE access_token_id = $1`, tokenID); err != nil {
		return err
	}
	for _, acc := range accounts {
		_, err = tx.Exec(ctx,
			`INSERT INTO cached_ad_accounts (access_token_id, remote_account_id, name, status, cached_at) VALUES ($1, $2, $3, $4, $5)`,
			tokenID, acc.ID, acc.Name, acc.Status, time.Now().UTC())
		if err != nil {
			return err
		}
	}
	return nil
}

// ListTemplates returns all campaign templates ordered by id.
func (s *Store) ListTemplates(ctx context.Context) ([]domain.CampaignTemplate, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, name, COALESCE(description, ''), objective,
               COALESCE(daily_budget, 0), COALESCE(lifetime_budget, 0),
               COALESCE(billing_event, 0), COALESCE(bid_amount, 0),
               COALESCE(optimization_goal, 0), COALESCE(targeting_json, ''),
               created_at, updated_at
        FROM campaign_templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignTemplate, error) {
		var t domain.CampaignTemplate
		err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Objective,
			&t.DailyBudget, &t.LifetimeBudget, &t.BillingEvent, &t.BidAmount,
			&t.OptimizationGoal, &t.TargetingJSON, &t.CreatedAt, &t.UpdatedAt)
		return t, err
	})
}

// CreateTemplate inserts a template and returns the stored row.
func (s *Store) CreateTemplate(ctx context.Context, t domain.CampaignTemplate) (*domain.CampaignTemplate, error) {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO campaign_templates
            (name, description, objective, daily_budget, lifetime_budget,
             billing_event, bid_amount, optimization_goal, targeting_json)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`,
		t.Name, t.Description, t.Objective, t.DailyBudget, t.LifetimeBudget,
		t.BillingEvent, t.BidAmount, t.OptimizationGoal, t.TargetingJSON).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTemplate removes a template by id.
func (s *Store) DeleteTemplate(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campaign_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// InsertLaunchHistory persists one bulk-launch audit record. The account
// id lists map to bigint arrays; the error map is stored as jsonb.
func (s *Store) InsertLaunchHistory(ctx context.Context, h domain.LaunchHistory) error {
	errJSON, err := json.Marshal(h.ErrorMessages)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
        INSERT INTO launch_history
            (campaign_name, accounts_targeted, accounts_succeeded, accounts_failed, error_messages)
        VALUES ($1,$2,$3,$4,$5)`,
		h.CampaignName, h.AccountsTargeted, h.AccountsSucceeded, h.AccountsFailed, errJSON)
	return err
}

// ListLaunchHistory returns the most recent launch records, newest first.
func (s *Store) ListLaunchHistory(ctx context.Context, limit int) ([]domain.LaunchHistory, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, campaign_name, accounts_targeted, accounts_succeeded,
               accounts_failed, error_messages, launched_at
        FROM launch_history ORDER BY launched_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LaunchHistory, error) {
		var (
			h       domain.LaunchHistory
			errJSON []byte
		)
		if err := row.Scan(&h.ID, &h.CampaignName, &h.AccountsTargeted,
			&h.AccountsSucceeded, &h.AccountsFailed, &errJSON, &h.LaunchedAt); err != nil {
			return h, err
		}
		h.ErrorMessages = map[int64]string{}
		if len(errJSON) > 0 {
			if err := json.Unmarshal(errJSON, &h.ErrorMessages); err != nil {
				return h, err
			}
		}
		return h, nil
	})
}

// CountStats returns the dashboard counters in a single round trip.
func (s *Store) CountStats(ctx context.Context) (*port.StatsResp, error) {
	var st port.StatsResp
	err := s.pool.QueryRow(ctx, `
        SELECT
            (SELECT count(*) FROM cached_ad_accounts),
            (SELECT count(*) FROM access_tokens WHERE is_active),
            (SELECT count(*) FROM organizations),
            (SELECT count(*) FROM campaign_templates),
            (SELECT count(*) FROM launch_history)`).
		Scan(&st.Accounts, &st.Tokens, &st.Organizations, &st.Templates, &st.Launches)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
