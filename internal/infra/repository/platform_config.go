package repository

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"

	"github.com/google/uuid"
)

type PlatformConfigWriteQueries interface {
	UpdatePlatformConfig(ctx context.Context, db query.DBTX, key, value string, updatedBy uuid.UUID) (int64, error)
}

type PlatformConfigRepository struct {
	queries PlatformConfigWriteQueries
}

func NewPlatformConfigRepository(queries PlatformConfigWriteQueries) *PlatformConfigRepository {
	return &PlatformConfigRepository{queries: queries}
}

func (r *PlatformConfigRepository) Update(ctx context.Context, tx query.DBTX, key, value string, updatedBy uuid.UUID) error {
	affected, err := r.queries.UpdatePlatformConfig(ctx, tx, key, value, updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update platform setting", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("platform setting not found", nil, infra.KindNotFound)
	}
	return nil
}
