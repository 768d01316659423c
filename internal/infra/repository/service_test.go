//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository"
	"github.com/Evidive-blue/evidive/internal/pkg/ptr"
	repositorymock "github.com/Evidive-blue/evidive/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	ctr := center.Reconstruct(center.ReconstructParams{ID: uuid.New(), OwnerID: uuid.New(), Name: "Blue Reef", Currency: "EUR"})

	svc, err := ctr.NewService(center.NewServiceParams{
		Name:            "Night dive",
		Price:           decimal.RequireFromString("65.00"),
		MinParticipants: ptr.Of(2),
		MaxCapacity:     ptr.Of(8),
	}, now)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: service stored"},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockServiceWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewServiceRepository(mockQueries)

			mockQueries.EXPECT().CreateService(ctx, mockDB, query.CreateServiceParams{
				ID:              svc.ID(),
				CenterID:        ctr.ID(),
				Name:            "Night dive",
				Price:           svc.Price(),
				Currency:        "EUR",
				MinParticipants: pgtype.Int4{Int32: 2, Valid: true},
				MaxCapacity:     8,
				IsActive:        true,
				CreatedAt:       now,
			}).Return(tc.queryErr)

			actualError := repo.Create(ctx, mockDB, svc)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
