//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/readstore"
	readstoremock "github.com/Evidive-blue/evidive/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func bookingRow(id uuid.UUID) query.BookingListRow {
	serviceID := uuid.New()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return query.BookingListRow{
		Booking: query.Booking{
			ID:               id,
			ClientID:         uuid.New(),
			CenterID:         uuid.New(),
			ServiceID:        pgtype.UUID{Bytes: serviceID, Valid: true},
			BookingDate:      time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			TimeSlot:         "08:00",
			Participants:     2,
			UnitPrice:        decimal.RequireFromString("100.00"),
			TotalPrice:       decimal.RequireFromString("200.00"),
			CommissionRate:   decimal.RequireFromString("20.00"),
			CommissionAmount: decimal.RequireFromString("40.00"),
			Currency:         "EUR",
			ClientNote:       pgtype.Text{String: "first dive", Valid: true},
			Status:           "pending",
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		ServiceName: pgtype.Text{String: "Discovery Dive", Valid: true},
		CenterName:  "Blue Lagoon Divers",
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(bookingRow(id), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(query.BookingListRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(query.BookingListRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, bookingID)

			view, err := store.FindByID(ctx, bookingID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Equal(t, bookingID, view.ID)
			assert.Equal(t, "2026-06-15", view.BookingDate)
			assert.Equal(t, "08:00", view.TimeSlot)
			assert.Equal(t, "Blue Lagoon Divers", view.CenterName)
			require.NotNil(t, view.ServiceName)
			assert.Equal(t, "Discovery Dive", *view.ServiceName)
			require.NotNil(t, view.ClientNote)
			assert.Equal(t, "first dive", *view.ClientNote)
			assert.NotNil(t, view.ServiceID)
			assert.Nil(t, view.ConfirmedAt)
			assert.True(t, view.CommissionAmount.Equal(decimal.NewFromInt(40)))
		})
	}
}

// =============================================================================
// ListByClient Tests
// =============================================================================

func TestBookingReadStore_ListByClient(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	confirmed := booking.StatusConfirmed

	t.Run("success: status filter is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByClient(ctx, gomock.Any(), query.ListBookingsByClientParams{
			ClientID: clientID,
			Status:   pgtype.Text{String: "confirmed", Valid: true},
			Limit:    50,
		}).Return([]query.BookingListRow{bookingRow(uuid.New()), bookingRow(uuid.New())}, nil)

		items, err := store.ListByClient(ctx, clientID, &confirmed, 50)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("success: no filter yields an empty, non-nil slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByClient(ctx, gomock.Any(), query.ListBookingsByClientParams{
			ClientID: clientID,
			Limit:    10,
		}).Return([]query.BookingListRow{}, nil)

		items, err := store.ListByClient(ctx, clientID, nil, 10)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByClient(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListByClient(ctx, clientID, nil, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Snapshot Tests
// =============================================================================

func TestBookingReadStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success: aggregate is rebuilt from the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		row := bookingRow(bookingID).Booking
		row.Status = "confirmed"
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), bookingID).Return(row, nil)

		b, err := store.Snapshot(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "2026-06-15", b.Date().String())
		assert.True(t, b.CommissionRate().Equal(decimal.NewFromInt(20)))
	})

	t.Run("error: corrupt stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		row := bookingRow(bookingID).Booking
		row.Status = "archived"
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), bookingID).Return(row, nil)

		_, err := store.Snapshot(ctx, bookingID)
		require.Error(t, err)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), bookingID).Return(query.Booking{}, pgx.ErrNoRows)

		_, err := store.Snapshot(ctx, bookingID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
