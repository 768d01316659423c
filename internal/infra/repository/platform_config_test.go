//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/repository"
	repositorymock "github.com/Evidive-blue/evidive/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlatformConfigRepository_Update(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: setting updated", affected: 1},
		{name: "error: unknown key", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPlatformConfigWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPlatformConfigRepository(mockQueries)

			mockQueries.EXPECT().UpdatePlatformConfig(ctx, mockDB, "commission_rate", "15", adminID).Return(tc.affected, tc.queryErr)

			actualError := repo.Update(ctx, mockDB, "commission_rate", "15", adminID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
