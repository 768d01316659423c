//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/ptr"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceCommands_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cmds := commands.NewServiceCommands(f.uow, clock.NewMockClock(fixedNow), f.logger)
	centerID, staff := uuid.New(), uuid.New()

	var stored *center.Service
	f.reads.EXPECT().Membership(ctx, centerID, staff).Return(staffMembership, nil)
	f.reads.EXPECT().CenterByID(ctx, centerID).Return(plainCenter(centerID), nil)
	f.services.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, s *center.Service) error {
			stored = s
			return nil
		})

	svc, err := cmds.Create(ctx, staff, centerID, center.NewServiceParams{
		Name:        "Wreck dive",
		Price:       decimal.RequireFromString("120.00"),
		MaxCapacity: ptr.Of(6),
	})
	require.NoError(t, err)
	assert.Same(t, stored, svc)
	assert.Equal(t, centerID, svc.CenterID())
	assert.Equal(t, "EUR", svc.Currency())
	assert.Equal(t, 6, svc.MaxCapacity())
	assert.Equal(t, fixedNow, svc.CreatedAt())
}

func TestServiceCommands_Create_Failures(t *testing.T) {
	centerID, actor := uuid.New(), uuid.New()
	valid := center.NewServiceParams{Name: "Wreck dive", Price: decimal.RequireFromString("120.00")}

	tests := []struct {
		name       string
		membership center.Membership
		centerErr  error
		params     center.NewServiceParams
		storeErr   error
		wantStore  bool
		errIs      error
	}{
		{name: "outsider", membership: center.Membership{}, params: valid, errIs: center.ErrNotMember},
		{name: "unknown center", membership: staffMembership, centerErr: repoNotFound(), params: valid, errIs: center.ErrNotFound},
		{name: "blank name", membership: staffMembership, params: center.NewServiceParams{Price: decimal.NewFromInt(10)}, errIs: center.ErrServiceNameRequired},
		{name: "sub-cent price", membership: staffMembership, params: center.NewServiceParams{Name: "Snorkel", Price: decimal.RequireFromString("10.005")}, errIs: center.ErrInvalidServicePrice},
		{name: "store fails", membership: staffMembership, params: valid, wantStore: true, storeErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			cmds := commands.NewServiceCommands(f.uow, clock.NewMockClock(fixedNow), f.logger)

			f.reads.EXPECT().Membership(ctx, centerID, actor).Return(tt.membership, nil)
			if tt.membership.IsMember {
				if tt.centerErr != nil {
					f.reads.EXPECT().CenterByID(ctx, centerID).Return(nil, tt.centerErr)
				} else {
					f.reads.EXPECT().CenterByID(ctx, centerID).Return(plainCenter(centerID), nil)
				}
			}
			if tt.wantStore {
				f.services.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(tt.storeErr)
			} else {
				f.services.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			_, err := cmds.Create(ctx, actor, centerID, tt.params)
			require.Error(t, err)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
			}
		})
	}
}
