package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const centerColumns = `id, owner_id, name, currency, stripe_account_id, stripe_onboarding_complete`

func scanCenter(row rowScanner) (Center, error) {
	var c Center
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Currency, &c.StripeAccountID, &c.StripeOnboardingComplete)
	return c, err
}

const getCenterByID = `SELECT ` + centerColumns + `
FROM centers
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetCenterByID(ctx context.Context, db DBTX, id uuid.UUID) (Center, error) {
	return scanCenter(db.QueryRow(ctx, getCenterByID, id))
}

const listCentersByOwner = `
SELECT c.id, c.owner_id, c.name, c.currency, c.stripe_account_id, c.stripe_onboarding_complete
FROM centers c
WHERE c.deleted_at IS NULL
  AND (c.owner_id = $1 OR EXISTS (
	SELECT 1 FROM center_members m
	WHERE m.center_id = c.id AND m.profile_id = $1 AND m.role = 'owner'
  ))
ORDER BY c.name ASC
LIMIT 10`

func (q *Queries) ListCentersByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Center, error) {
	rows, err := db.Query(ctx, listCentersByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Center{}
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

type CenterMembership struct {
	IsMember bool
	IsOwner  bool
}

// Owners count as members whether they are linked through center_members or
// only through centers.owner_id.
const getCenterMembership = `
SELECT
	EXISTS (
		SELECT 1 FROM center_members m WHERE m.center_id = $1 AND m.profile_id = $2
	) AS is_member,
	EXISTS (
		SELECT 1 FROM centers c WHERE c.id = $1 AND c.owner_id = $2 AND c.deleted_at IS NULL
	) OR EXISTS (
		SELECT 1 FROM center_members m WHERE m.center_id = $1 AND m.profile_id = $2 AND m.role = 'owner'
	) AS is_owner`

func (q *Queries) GetCenterMembership(ctx context.Context, db DBTX, centerID, profileID uuid.UUID) (CenterMembership, error) {
	var m CenterMembership
	err := db.QueryRow(ctx, getCenterMembership, centerID, profileID).Scan(&m.IsMember, &m.IsOwner)
	return m, err
}

const setCenterStripeAccount = `
UPDATE centers
SET stripe_account_id = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) SetCenterStripeAccount(ctx context.Context, db DBTX, id uuid.UUID, accountID string) (int64, error) {
	tag, err := db.Exec(ctx, setCenterStripeAccount, id, accountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setCenterOnboardingByAccount = `
UPDATE centers
SET stripe_onboarding_complete = $2, updated_at = now()
WHERE stripe_account_id = $1 AND deleted_at IS NULL`

func (q *Queries) SetCenterOnboardingByAccount(ctx context.Context, db DBTX, accountID string, complete bool) (int64, error) {
	tag, err := db.Exec(ctx, setCenterOnboardingByAccount, accountID, complete)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setCenterCurrency = `
UPDATE centers
SET currency = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) SetCenterCurrency(ctx context.Context, db DBTX, id uuid.UUID, currency string) (int64, error) {
	tag, err := db.Exec(ctx, setCenterCurrency, id, currency)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getCenterAvailableBalance = `
SELECT COALESCE(SUM(total_price - commission_amount), 0)::numeric
FROM bookings
WHERE center_id = $1
  AND status = 'completed'
  AND deleted_at IS NULL`

func (q *Queries) GetCenterAvailableBalance(ctx context.Context, db DBTX, centerID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := db.QueryRow(ctx, getCenterAvailableBalance, centerID).Scan(&balance)
	return balance, err
}
