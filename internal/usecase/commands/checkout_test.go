//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"
	"github.com/Evidive-blue/evidive/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutCommands_Initiate_DestinationCharge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cmds := commands.NewCheckoutCommands(f.uow, f.gateway, f.urls, f.logger)

	b := builder.NewBookingBuilder().BuildReconstructed()
	f.reads.EXPECT().BookingByID(ctx, b.ID()).Return(b, nil)
	f.reads.EXPECT().CenterByID(ctx, b.CenterID()).Return(onboardedCenter(b.CenterID()), nil)
	f.reads.EXPECT().ServiceByID(ctx, *b.ServiceID()).Return(&shared.ServiceSnapshot{Name: "Discovery Dive"}, nil)

	dest := "acct_center_1"
	want := commands.CheckoutSessionRequest{
		BookingID:           b.ID(),
		ProductName:         "Discovery Dive",
		AmountCents:         20000,
		Currency:            "EUR",
		Destination:         &dest,
		ApplicationFeeCents: 4000,
		SuccessURL:          "http://localhost:3000/bookings/" + b.ID().String() + "?status=success",
		CancelURL:           "http://localhost:3000/bookings/" + b.ID().String() + "?status=cancelled",
	}
	f.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("checkout request mismatch (-want +got):\n%s", diff)
			}
			return &commands.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil
		})

	url, err := cmds.Initiate(ctx, b.ClientID(), b.ID())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", url)
}

func TestCheckoutCommands_Initiate_PlatformChargeWithoutOnboarding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cmds := commands.NewCheckoutCommands(f.uow, f.gateway, f.urls, f.logger)

	b := builder.NewBookingBuilder().BuildReconstructed()
	f.reads.EXPECT().BookingByID(ctx, b.ID()).Return(b, nil)
	f.reads.EXPECT().CenterByID(ctx, b.CenterID()).Return(plainCenter(b.CenterID()), nil)
	f.reads.EXPECT().ServiceByID(ctx, gomock.Any()).Return(nil, repoNotFound())
	f.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
			assert.Nil(t, got.Destination)
			assert.Zero(t, got.ApplicationFeeCents)
			assert.Equal(t, int64(20000), got.AmountCents)
			assert.Equal(t, "Dive booking", got.ProductName)
			return &commands.CheckoutSession{ID: "cs_2", URL: "https://checkout.stripe.com/c/pay/cs_2"}, nil
		})

	url, err := cmds.Initiate(ctx, b.ClientID(), b.ID())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_2", url)
}

func TestCheckoutCommands_Initiate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		status    booking.Status
		asClient  bool
		missing   bool
		noCenter  bool
		gatewayKO bool
		expectErr error
	}{
		{name: "unknown booking", missing: true, asClient: true, expectErr: booking.ErrNotFound},
		{name: "someone else's booking", status: booking.StatusPending, expectErr: commands.ErrNotBookingsClient},
		{name: "confirmed booking", status: booking.StatusConfirmed, asClient: true, expectErr: commands.ErrBookingNotPayable},
		{name: "cancelled booking", status: booking.StatusCancelled, asClient: true, expectErr: commands.ErrBookingNotPayable},
		{name: "center gone", status: booking.StatusPending, asClient: true, noCenter: true, expectErr: center.ErrNotFound},
		{name: "gateway failure", status: booking.StatusPending, asClient: true, gatewayKO: true, expectErr: errs.ErrGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			cmds := commands.NewCheckoutCommands(f.uow, f.gateway, f.urls, f.logger)

			b := builder.NewBookingBuilder().WithStatus(tc.status).BuildReconstructed()
			actor := uuid.New()
			if tc.asClient {
				actor = b.ClientID()
			}

			if tc.missing {
				f.reads.EXPECT().BookingByID(ctx, b.ID()).Return(nil, repoNotFound())
			} else {
				f.reads.EXPECT().BookingByID(ctx, b.ID()).Return(b, nil)
			}
			if tc.noCenter {
				f.reads.EXPECT().CenterByID(ctx, b.CenterID()).Return(nil, repoNotFound())
			}
			if tc.gatewayKO {
				f.reads.EXPECT().CenterByID(ctx, b.CenterID()).Return(onboardedCenter(b.CenterID()), nil)
				f.reads.EXPECT().ServiceByID(ctx, gomock.Any()).Return(&shared.ServiceSnapshot{Name: "Night Dive"}, nil)
				f.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
					Return(nil, errs.Mark(errs.New("stripe: api_connection_error"), errs.ErrGateway))
			}

			url, err := cmds.Initiate(ctx, actor, b.ID())
			require.Error(t, err)
			assert.Empty(t, url)
			assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
		})
	}
}
