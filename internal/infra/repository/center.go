package repository

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"

	"github.com/google/uuid"
)

type CenterWriteQueries interface {
	SetCenterStripeAccount(ctx context.Context, db query.DBTX, id uuid.UUID, accountID string) (int64, error)
	SetCenterOnboardingByAccount(ctx context.Context, db query.DBTX, accountID string, complete bool) (int64, error)
	SetCenterCurrency(ctx context.Context, db query.DBTX, id uuid.UUID, currency string) (int64, error)
}

type CenterRepository struct {
	queries CenterWriteQueries
}

func NewCenterRepository(queries CenterWriteQueries) *CenterRepository {
	return &CenterRepository{queries: queries}
}

func (r *CenterRepository) SetStripeAccount(ctx context.Context, tx query.DBTX, centerID uuid.UUID, accountID string) error {
	affected, err := r.queries.SetCenterStripeAccount(ctx, tx, centerID, accountID)
	if err != nil {
		return infra.WrapRepoErr("failed to set stripe account", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("center not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CenterRepository) SetOnboardingByAccount(ctx context.Context, tx query.DBTX, accountID string, complete bool) (bool, error) {
	affected, err := r.queries.SetCenterOnboardingByAccount(ctx, tx, accountID, complete)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update onboarding status", err)
	}
	return affected > 0, nil
}

func (r *CenterRepository) SetCurrency(ctx context.Context, tx query.DBTX, centerID uuid.UUID, currency string) error {
	affected, err := r.queries.SetCenterCurrency(ctx, tx, centerID, currency)
	if err != nil {
		return infra.WrapRepoErr("failed to set center currency", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("center not found", nil, infra.KindNotFound)
	}
	return nil
}
