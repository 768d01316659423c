//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	queriesmock "github.com/Evidive-blue/evidive/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentQueries_Revenue(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	centerID := uuid.New()

	t.Run("member gets revenue with net derived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		access := queriesmock.NewMockAccessReadStore(ctrl)

		access.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{IsMember: true}, nil)
		store.EXPECT().Revenue(ctx, centerID).Return(&queries.RevenueView{
			CenterID:        centerID,
			TotalRevenue:    decimal.RequireFromString("500.00"),
			TotalCommission: decimal.RequireFromString("100.00"),
		}, nil)

		view, err := queries.NewPaymentQueries(store, access).Revenue(ctx, actor, centerID)
		require.NoError(t, err)
		assert.True(t, view.NetRevenue.Equal(decimal.NewFromInt(400)), "net = %s", view.NetRevenue)
	})

	t.Run("non-member is forbidden before any read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		access := queriesmock.NewMockAccessReadStore(ctrl)

		access.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{}, nil)

		_, err := queries.NewPaymentQueries(store, access).Revenue(ctx, actor, centerID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, center.ErrNotMember))
	})
}

func TestPaymentQueries_Commissions(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	centerID := uuid.New()

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPaymentReadStore(ctrl)
	access := queriesmock.NewMockAccessReadStore(ctrl)

	access.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{IsOwner: true}, nil)
	store.EXPECT().ListCommissions(ctx, centerID, queries.Page{Limit: queries.DefaultListLimit, Offset: 0}).
		Return([]*queries.CommissionView{{Currency: "EUR"}}, nil)

	items, err := queries.NewPaymentQueries(store, access).Commissions(ctx, actor, centerID, queries.Page{Offset: -1})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
