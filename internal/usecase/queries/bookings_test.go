//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	queriesmock "github.com/Evidive-blue/evidive/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errStoreDown = errors.New("store unavailable")
	errNotFound  = infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
)

func TestBookingQueries_Get(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	centerID := uuid.New()
	bookingID := uuid.New()
	view := &queries.BookingView{ID: bookingID, ClientID: clientID, CenterID: centerID, Status: "pending"}

	testCases := []struct {
		name      string
		actor     uuid.UUID
		setup     func(store *queriesmock.MockBookingReadStore, access *queriesmock.MockAccessReadStore, actor uuid.UUID)
		expectErr error
	}{
		{
			name:  "client sees their own booking",
			actor: clientID,
			setup: func(store *queriesmock.MockBookingReadStore, _ *queriesmock.MockAccessReadStore, _ uuid.UUID) {
				store.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
			},
		},
		{
			name:  "center member sees the booking",
			actor: uuid.New(),
			setup: func(store *queriesmock.MockBookingReadStore, access *queriesmock.MockAccessReadStore, actor uuid.UUID) {
				store.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				access.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{IsMember: true}, nil)
			},
		},
		{
			name:  "stranger is forbidden",
			actor: uuid.New(),
			setup: func(store *queriesmock.MockBookingReadStore, access *queriesmock.MockAccessReadStore, actor uuid.UUID) {
				store.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				access.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{}, nil)
			},
			expectErr: queries.ErrBookingAccessDenied,
		},
		{
			name:  "missing booking maps to not found",
			actor: clientID,
			setup: func(store *queriesmock.MockBookingReadStore, _ *queriesmock.MockAccessReadStore, _ uuid.UUID) {
				store.EXPECT().FindByID(ctx, bookingID).Return(nil, errNotFound)
			},
			expectErr: booking.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			access := queriesmock.NewMockAccessReadStore(ctrl)
			tc.setup(store, access, tc.actor)

			got, err := queries.NewBookingQueries(store, access).Get(ctx, tc.actor, bookingID)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, got.ID)
		})
	}
}

func TestBookingQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("status filter is parsed and limit clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		access := queriesmock.NewMockAccessReadStore(ctrl)

		confirmed := booking.StatusConfirmed
		store.EXPECT().ListByClient(ctx, actor, &confirmed, int32(queries.MaxListLimit)).Return([]*queries.BookingView{}, nil)

		status := "confirmed"
		items, err := queries.NewBookingQueries(store, access).ListMine(ctx, actor, &status, 10_000)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("empty status means no filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		access := queriesmock.NewMockAccessReadStore(ctrl)

		store.EXPECT().ListByClient(ctx, actor, gomock.Nil(), int32(queries.DefaultListLimit)).Return(nil, nil)

		empty := ""
		_, err := queries.NewBookingQueries(store, access).ListMine(ctx, actor, &empty, 0)
		require.NoError(t, err)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		access := queriesmock.NewMockAccessReadStore(ctrl)

		bogus := "archived"
		_, err := queries.NewBookingQueries(store, access).ListMine(ctx, actor, &bogus, 10)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(-3))
	assert.Equal(t, 25, queries.ClampLimit(25))
	assert.Equal(t, queries.MaxListLimit, queries.ClampLimit(queries.MaxListLimit+1))

	assert.Equal(t, queries.Page{Limit: queries.DefaultListLimit, Offset: 0}, queries.Page{Limit: 0, Offset: -5}.Normalize())
}
