package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/domain/user"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CenterReadQueries interface {
	GetCenterByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Center, error)
	ListCentersByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) ([]query.Center, error)
	GetCenterMembership(ctx context.Context, db query.DBTX, centerID, profileID uuid.UUID) (query.CenterMembership, error)
	GetCenterAvailableBalance(ctx context.Context, db query.DBTX, centerID uuid.UUID) (decimal.Decimal, error)
	GetProfileRole(ctx context.Context, db query.DBTX, id uuid.UUID) (string, error)
}

type CenterReadStore struct {
	queries CenterReadQueries
	db      query.DBTX
}

func NewCenterReadStore(queries CenterReadQueries, db query.DBTX) *CenterReadStore {
	return &CenterReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CenterReadStore) FindByID(ctx context.Context, id uuid.UUID) (*center.Center, error) {
	row, err := r.queries.GetCenterByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find center", err)
	}
	return toCenter(row), nil
}

func (r *CenterReadStore) Membership(ctx context.Context, centerID, profileID uuid.UUID) (center.Membership, error) {
	m, err := r.queries.GetCenterMembership(ctx, r.db, centerID, profileID)
	if err != nil {
		return center.Membership{}, infra.WrapRepoErr("failed to check center membership", err)
	}
	return center.Membership{IsMember: m.IsMember, IsOwner: m.IsOwner}, nil
}

// ProfileRole returns KindNotFound when the caller has no profile row.
func (r *CenterReadStore) ProfileRole(ctx context.Context, profileID uuid.UUID) (user.Role, error) {
	raw, err := r.queries.GetProfileRole(ctx, r.db, profileID)
	if err != nil {
		return "", infra.WrapRepoErr("failed to load profile role", err)
	}
	return user.Role(raw), nil
}

func (r *CenterReadStore) AvailableBalance(ctx context.Context, centerID uuid.UUID) (decimal.Decimal, error) {
	balance, err := r.queries.GetCenterAvailableBalance(ctx, r.db, centerID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to compute available balance", err)
	}
	return balance, nil
}

func (r *CenterReadStore) ListOwnedCenters(ctx context.Context, ownerID uuid.UUID) ([]*queries.StripeConfigView, error) {
	rows, err := r.queries.ListCentersByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned centers", err)
	}

	items := make([]*queries.StripeConfigView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.StripeConfigView{
			CenterID:                 row.ID,
			CenterName:               row.Name,
			StripeAccountID:          pgconv.StringPtrFromPgtype(row.StripeAccountID),
			StripeOnboardingComplete: row.StripeOnboardingComplete,
			Currency:                 row.Currency,
		})
	}
	return items, nil
}

func toCenter(row query.Center) *center.Center {
	return center.Reconstruct(center.ReconstructParams{
		ID:                       row.ID,
		OwnerID:                  row.OwnerID,
		Name:                     row.Name,
		Currency:                 row.Currency,
		StripeAccountID:          pgconv.StringPtrFromPgtype(row.StripeAccountID),
		StripeOnboardingComplete: row.StripeOnboardingComplete,
	})
}
