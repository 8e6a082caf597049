package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the launcher database: two organizations,
// one access token each and a handful of cached accounts per token, plus a
// starter campaign template. Token values are random UUIDs and will not
// authenticate against the real platform. Ids come from the serial columns
// so the sequences stay ahead of the seeded rows; a populated database is
// left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var orgs int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM organizations`).Scan(&orgs); err != nil {
		return err
	}
	if orgs > 0 {
		return nil
	}

	for i := 1; i <= 2; i++ {
		var orgID int64
		err := db.QueryRow(ctx, `INSERT INTO organizations (name, description, created_at, updated_at)
VALUES ($1,$2,now(),now()) RETURNING id`,
			fmt.Sprintf("Demo Org %d", i), "seeded organization").Scan(&orgID)
		if err != nil {
			return err
		}

		var tokenID int64
		err = db.QueryRow(ctx, `INSERT INTO access_tokens (organization_id, name, token, is_active, created_at)
VALUES ($1,$2,$3,true,now()) RETURNING id`,
			orgID, fmt.Sprintf("Demo Token %d", i), uuid.NewString()).Scan(&tokenID)
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			n := (i-1)*3 + j
			remoteID := int64(100000 + n)
			_, err = db.Exec(ctx, `INSERT INTO cached_ad_accounts
    (access_token_id, remote_account_id, name, status, cached_at)
VALUES ($1,$2,$3,$4,$5)`,
				tokenID, remoteID, fmt.Sprintf("Demo Account %d", n), "active", time.Now().UTC())
			if err != nil {
				return err
			}
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO campaign_templates
    (name, description, objective, daily_budget, billing_event, bid_amount, optimization_goal, targeting_json, created_at, updated_at)
VALUES ('Traffic starter', 'seeded template', 2, 100, 1, 0.5, 1, '{"geos":["US"]}', now(), now())`)
	return err
}
