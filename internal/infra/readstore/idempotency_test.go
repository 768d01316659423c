//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/readstore"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"
	readstoremock "github.com/Evidive-blue/evidive/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := now.Add(24 * time.Hour)

	completed := query.IdempotencyKey{
		Key:              key,
		UserID:           userID,
		Endpoint:         "POST /centers/{id}/payouts",
		RequestHash:      "hash",
		Status:           shared.IdempotencyStatusCompleted,
		ResultTransferID: pgtype.Text{String: "tr_123", Valid: true},
		ResultAmount:     decimal.NullDecimal{Decimal: decimal.RequireFromString("160.00"), Valid: true},
		ResultCurrency:   pgtype.Text{String: "EUR", Valid: true},
		ExpiresAt:        expiresAt,
	}

	t.Run("success: completed record carries its transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, &mockDBTX{}, clock.NewMockClock(now))

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), key, userID).Return(completed, nil)

		record, err := store.Get(ctx, key, userID)
		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyStatusCompleted, record.Status)
		assert.Equal(t, "hash", record.RequestHash)
		require.NotNil(t, record.Result)
		assert.Equal(t, "tr_123", record.Result.TransferID)
		assert.True(t, record.Result.Amount.Equal(decimal.RequireFromString("160")))
		assert.Equal(t, "EUR", record.Result.Currency)
	})

	t.Run("success: processing record has no result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, &mockDBTX{}, clock.NewMockClock(now))

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), key, userID).Return(query.IdempotencyKey{
			Key:       key,
			UserID:    userID,
			Status:    shared.IdempotencyStatusProcessing,
			ExpiresAt: expiresAt,
		}, nil)

		record, err := store.Get(ctx, key, userID)
		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyStatusProcessing, record.Status)
		assert.Nil(t, record.Result)
	})

	t.Run("error: expired record reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, &mockDBTX{}, clock.NewMockClock(expiresAt.Add(time.Second)))

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), key, userID).Return(completed, nil)

		_, err := store.Get(ctx, key, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		store := readstore.NewIdempotencyReadStore(mockQueries, &mockDBTX{}, clock.NewMockClock(now))

		mockQueries.EXPECT().GetIdempotencyKey(ctx, gomock.Any(), key, userID).Return(query.IdempotencyKey{}, pgx.ErrNoRows)

		_, err := store.Get(ctx, key, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
