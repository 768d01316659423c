package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db query.DBTX, key, userID uuid.UUID) (query.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      query.DBTX
	clock   clock.Clock
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db query.DBTX, clk clock.Clock) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	if r.clock.Now().After(row.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	record := &shared.IdempotencyRecord{
		Key:         row.Key,
		UserID:      row.UserID,
		Endpoint:    row.Endpoint,
		Status:      row.Status,
		RequestHash: row.RequestHash,
		ExpiresAt:   row.ExpiresAt,
	}
	if row.ResultTransferID.Valid && row.ResultAmount.Valid {
		record.Result = &shared.IdempotentTransfer{
			TransferID: row.ResultTransferID.String,
			Amount:     row.ResultAmount.Decimal,
			Currency:   row.ResultCurrency.String,
		}
	}
	return record, nil
}
