//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository"
	"github.com/Evidive-blue/evidive/tests/common/builder"
	repositorymock "github.com/Evidive-blue/evidive/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created with priced snapshot",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx query.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateBookingParams) (uuid.UUID, error) {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, "200", arg.TotalPrice.String())
						assert.Equal(t, "40", arg.CommissionAmount.String())
						assert.Equal(t, "08:00", arg.TimeSlot)
						assert.Equal(t, "pending", arg.Status)
						return arg.ID, nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx query.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: slot already taken by a live booking",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx query.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"ux_bookings_active_slot\""}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			domainBooking, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainBooking, mockDB)

			actualError := repo.Create(ctx, mockDB, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Transition Tests
// =============================================================================

func TestBookingRepository_Transition(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name          string
		to            booking.Status
		setupMock     func(*repositorymock.MockBookingWriteQueries, query.DBTX)
		expectedMoved bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: pending booking confirmed",
			to:   booking.StatusConfirmed,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().TransitionBookingStatus(ctx, tx, query.TransitionBookingStatusParams{
					ID:           bookingID,
					ToStatus:     "confirmed",
					FromStatuses: []string{"pending"},
				}).Return(int64(1), nil)
			},
			expectedMoved: true,
		},
		{
			name: "success: cancel guard covers pending and confirmed",
			to:   booking.StatusCancelled,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().TransitionBookingStatus(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.TransitionBookingStatusParams) (int64, error) {
						assert.ElementsMatch(t, []string{"pending", "confirmed"}, arg.FromStatuses)
						return 1, nil
					})
			},
			expectedMoved: true,
		},
		{
			name: "guard miss: no row moved",
			to:   booking.StatusCompleted,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().TransitionBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedMoved: false,
		},
		{
			name:          "no guard: pending is never a target",
			to:            booking.StatusPending,
			setupMock:     func(*repositorymock.MockBookingWriteQueries, query.DBTX) {},
			expectedMoved: false,
		},
		{
			name: "error: database error occurs",
			to:   booking.StatusConfirmed,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx query.DBTX) {
				mock.EXPECT().TransitionBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), pgx.ErrTxClosed)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			moved, actualError := repo.Transition(ctx, mockDB, bookingID, tc.to)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.False(t, moved)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, tc.expectedMoved, moved)
			}
		})
	}
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
