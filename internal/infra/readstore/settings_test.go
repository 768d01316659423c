//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/readstore"
	readstoremock "github.com/Evidive-blue/evidive/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlatformConfigReadStore_Setting(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		value         string
		queryErr      error
		expectNil     bool
		expectedError bool
	}{
		{name: "success: stored value returned", value: "15"},
		{name: "missing key yields nil", queryErr: pgx.ErrNoRows, expectNil: true},
		{name: "error: database error", queryErr: errDBConnectionLost, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPlatformConfigReadQueries(ctrl)
			store := readstore.NewPlatformConfigReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetPlatformConfigValue(ctx, gomock.Any(), "commission_rate").Return(tc.value, tc.queryErr)

			got, err := store.Setting(ctx, "commission_rate")

			switch {
			case tc.expectedError:
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			case tc.expectNil:
				require.NoError(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tc.value, *got)
			}
		})
	}
}

func TestPlatformConfigReadStore_ListSettings(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	updated := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPlatformConfigReadQueries(ctrl)
	store := readstore.NewPlatformConfigReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListPlatformConfig(ctx, gomock.Any()).Return([]query.PlatformConfig{
		{
			Key:         "commission_rate",
			Value:       "20",
			Category:    "payments",
			Description: pgtype.Text{String: "Platform commission in percent", Valid: true},
			UpdatedAt:   updated,
			UpdatedBy:   pgtype.UUID{Bytes: adminID, Valid: true},
		},
		{
			Key:       "stripe_publishable_key",
			Value:     "pk_test_123",
			Category:  "stripe",
			IsSecret:  true,
			UpdatedAt: updated,
		},
	}, nil)

	items, err := store.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "commission_rate", items[0].Key)
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "Platform commission in percent", *items[0].Description)
	require.NotNil(t, items[0].UpdatedBy)
	assert.Equal(t, adminID, *items[0].UpdatedBy)
	assert.Equal(t, updated, items[0].UpdatedAt)

	assert.True(t, items[1].IsSecret)
	assert.Nil(t, items[1].Description)
	assert.Nil(t, items[1].UpdatedBy)
}
