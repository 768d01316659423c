package repository

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository/converter"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedDateWriteQueries interface {
	CreateBlockedDate(ctx context.Context, db query.DBTX, arg query.CreateBlockedDateParams) (uuid.UUID, error)
	DeleteBlockedDate(ctx context.Context, db query.DBTX, id, centerID uuid.UUID) (int64, error)
}

type BlockedDateRepository struct {
	queries BlockedDateWriteQueries
}

func NewBlockedDateRepository(queries BlockedDateWriteQueries) *BlockedDateRepository {
	return &BlockedDateRepository{queries: queries}
}

// Create reports DUPLICATE_KEY when the center already blocked that day.
func (r *BlockedDateRepository) Create(ctx context.Context, tx query.DBTX, b booking.BlockedDate) (uuid.UUID, error) {
	id, err := r.queries.CreateBlockedDate(ctx, tx, converter.BlockedDateToCreateParams(b))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("date already blocked", nil, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to block date", err)
	}
	return id, nil
}

// Delete only matches rows of the given center.
func (r *BlockedDateRepository) Delete(ctx context.Context, tx query.DBTX, centerID, id uuid.UUID) error {
	affected, err := r.queries.DeleteBlockedDate(ctx, tx, id, centerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked date", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("blocked date not found", nil, infra.KindNotFound)
	}
	return nil
}
