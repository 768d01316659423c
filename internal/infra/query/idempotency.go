package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// An expired key is taken over by the new request instead of blocking it.
const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint = EXCLUDED.endpoint,
	request_hash = EXCLUDED.request_hash,
	status = 'processing',
	result_transfer_id = NULL,
	result_amount = NULL,
	result_currency = NULL,
	expires_at = EXCLUDED.expires_at,
	updated_at = now()
WHERE idempotency_keys.expires_at < now()`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, status,
	result_transfer_id, result_amount, result_currency, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (IdempotencyKey, error) {
	var k IdempotencyKey
	err := db.QueryRow(ctx, getIdempotencyKey, key, userID).Scan(
		&k.Key, &k.UserID, &k.Endpoint, &k.RequestHash, &k.Status,
		&k.ResultTransferID, &k.ResultAmount, &k.ResultCurrency, &k.ExpiresAt,
	)
	return k, err
}

const updateIdempotencyKeyCompleted = `
UPDATE idempotency_keys
SET status = 'completed',
	result_transfer_id = $3,
	result_amount = $4,
	result_currency = $5,
	updated_at = now()
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

type UpdateIdempotencyKeyCompletedParams struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	ResultTransferID string
	ResultAmount     decimal.Decimal
	ResultCurrency   string
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) (int64, error) {
	tag, err := db.Exec(ctx, updateIdempotencyKeyCompleted,
		arg.Key, arg.UserID, arg.ResultTransferID, arg.ResultAmount, arg.ResultCurrency,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteProcessingIdempotencyKey = `
DELETE FROM idempotency_keys
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) DeleteProcessingIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteProcessingIdempotencyKey, key, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
