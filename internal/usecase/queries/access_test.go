//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/domain/user"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	queriesmock "github.com/Evidive-blue/evidive/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccessQueries_RequireAdmin(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	testCases := []struct {
		name      string
		role      user.Role
		storeErr  error
		expectErr error
	}{
		{name: "admin passes", role: user.RoleAdmin},
		{name: "diver is rejected", role: user.RoleDiver, expectErr: user.ErrAdminRequired},
		{name: "missing profile is rejected", storeErr: errNotFound, expectErr: user.ErrAdminRequired},
		{name: "store failure propagates", storeErr: errStoreDown, expectErr: errStoreDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockAccessReadStore(ctrl)
			store.EXPECT().ProfileRole(ctx, actor).Return(tc.role, tc.storeErr)

			err := queries.NewAccessQueries(store).RequireAdmin(ctx, actor)
			if tc.expectErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
		})
	}
}

func TestAccessQueries_RequireMember(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	centerID := uuid.New()

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAccessReadStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{IsOwner: true}, nil),
		store.EXPECT().Membership(ctx, centerID, actor).Return(center.Membership{}, nil),
	)

	access := queries.NewAccessQueries(store)
	assert.NoError(t, access.RequireMember(ctx, actor, centerID))

	err := access.RequireMember(ctx, actor, centerID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}
