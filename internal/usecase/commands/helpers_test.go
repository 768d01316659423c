//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"
	commandsmock "github.com/Evidive-blue/evidive/tests/mock/commands"
	sharedmock "github.com/Evidive-blue/evidive/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

// fixture wires a unit of work whose Within runs the callback against mocked
// repositories, so tests only declare the calls they care about.
type fixture struct {
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookings     *sharedmock.MockBookingRepository
	transactions *sharedmock.MockTransactionRepository
	centers      *sharedmock.MockCenterRepository
	services     *sharedmock.MockServiceRepository
	blockedDates *sharedmock.MockBlockedDateRepository
	config       *sharedmock.MockPlatformConfigRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	gateway      *commandsmock.MockPaymentGateway
	logger       *slog.Logger
	urls         commands.FrontendURLs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:         ctrl,
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		transactions: sharedmock.NewMockTransactionRepository(ctrl),
		centers:      sharedmock.NewMockCenterRepository(ctrl),
		services:     sharedmock.NewMockServiceRepository(ctrl),
		blockedDates: sharedmock.NewMockBlockedDateRepository(ctrl),
		config:       sharedmock.NewMockPlatformConfigRepository(ctrl),
		idempotency:  sharedmock.NewMockIdempotencyRepository(ctrl),
		gateway:      commandsmock.NewMockPaymentGateway(ctrl),
		logger:       slog.New(slog.DiscardHandler),
		urls:         commands.NewFrontendURLs("http://localhost:3000/"),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Transactions().Return(f.transactions).AnyTimes()
	f.tx.EXPECT().Centers().Return(f.centers).AnyTimes()
	f.tx.EXPECT().Services().Return(f.services).AnyTimes()
	f.tx.EXPECT().BlockedDates().Return(f.blockedDates).AnyTimes()
	f.tx.EXPECT().PlatformConfig().Return(f.config).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	return f
}

func onboardedCenter(id uuid.UUID) *center.Center {
	acct := "acct_center_1"
	return center.Reconstruct(center.ReconstructParams{
		ID:                       id,
		OwnerID:                  uuid.New(),
		Name:                     "Blue Lagoon Divers",
		Currency:                 "EUR",
		StripeAccountID:          &acct,
		StripeOnboardingComplete: true,
	})
}

func plainCenter(id uuid.UUID) *center.Center {
	return center.Reconstruct(center.ReconstructParams{
		ID:       id,
		OwnerID:  uuid.New(),
		Name:     "Reef Explorers",
		Currency: "EUR",
	})
}

func repoNotFound() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

func repoDuplicate() error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: "23505"})
}

func repoForeignKey() error {
	return infra.WrapRepoErr("foreign key", &pgconn.PgError{Code: "23503"})
}
