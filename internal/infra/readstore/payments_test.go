//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/readstore"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	readstoremock "github.com/Evidive-blue/evidive/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentReadStore_ListCommissions(t *testing.T) {
	ctx := context.Background()
	centerID := uuid.New()
	bookingID := uuid.New()
	created := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
	store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListCommissionsByCenter(ctx, gomock.Any(), query.CenterPageParams{
		CenterID: centerID,
		Limit:    20,
		Offset:   40,
	}).Return([]query.CommissionRow{{
		BookingID:         bookingID,
		BookingDate:       time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		TotalPrice:        decimal.RequireFromString("200.00"),
		CommissionRate:    decimal.RequireFromString("20"),
		CommissionAmount:  decimal.RequireFromString("40.00"),
		Currency:          "EUR",
		Status:            "confirmed",
		ServiceName:       pgtype.Text{String: "Night Dive", Valid: true},
		ClientDisplayName: pgtype.Text{},
		CreatedAt:         created,
	}}, nil)

	items, err := store.ListCommissions(ctx, centerID, queries.Page{Limit: 20, Offset: 40})
	require.NoError(t, err)
	require.Len(t, items, 1)

	serviceName := "Night Dive"
	want := &queries.CommissionView{
		BookingID:        bookingID,
		BookingDate:      "2026-06-15",
		TotalPrice:       decimal.RequireFromString("200.00"),
		CommissionRate:   decimal.RequireFromString("20"),
		CommissionAmount: decimal.RequireFromString("40.00"),
		Currency:         "EUR",
		Status:           "confirmed",
		ServiceName:      &serviceName,
		CreatedAt:        created,
	}
	decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, items[0], decimalEqual); diff != "" {
		t.Errorf("commission view mismatch (-want +got):\n%s", diff)
	}
}

func TestPaymentReadStore_Revenue(t *testing.T) {
	ctx := context.Background()
	centerID := uuid.New()

	t.Run("success: aggregate and balance are combined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
		store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCenterRevenue(ctx, gomock.Any(), centerID).Return(query.CenterRevenueRow{
			TotalRevenue:     decimal.RequireFromString("500.00"),
			TotalCommission:  decimal.RequireFromString("100.00"),
			PendingRevenue:   decimal.RequireFromString("200.00"),
			CompletedRevenue: decimal.RequireFromString("300.00"),
			TransactionCount: 3,
			Currency:         "EUR",
		}, nil)
		mockQueries.EXPECT().GetCenterAvailableBalance(ctx, gomock.Any(), centerID).Return(decimal.RequireFromString("240.00"), nil)

		view, err := store.Revenue(ctx, centerID)
		require.NoError(t, err)
		assert.Equal(t, centerID, view.CenterID)
		assert.True(t, view.TotalRevenue.Equal(decimal.NewFromInt(500)))
		assert.True(t, view.AvailableBalance.Equal(decimal.NewFromInt(240)))
		assert.Equal(t, int64(3), view.TransactionCount)
		assert.Equal(t, "EUR", view.Currency)
	})

	t.Run("error: balance query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
		store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCenterRevenue(ctx, gomock.Any(), centerID).Return(query.CenterRevenueRow{}, nil)
		mockQueries.EXPECT().GetCenterAvailableBalance(ctx, gomock.Any(), centerID).Return(decimal.Zero, errDBConnectionLost)

		_, err := store.Revenue(ctx, centerID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPaymentReadStore_TransactionExists(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
	store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().TransactionExistsByPaymentIntent(ctx, gomock.Any(), "pi_seen").Return(true, nil)

	exists, err := store.TransactionExists(ctx, "pi_seen")
	require.NoError(t, err)
	assert.True(t, exists)
}
