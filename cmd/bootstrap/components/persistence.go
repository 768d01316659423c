package components

import (
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/readstore"
	"github.com/Evidive-blue/evidive/internal/infra/uow"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Service catalogue
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Center (membership, roles, connect config)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CenterReadQueries)),
		),
		fx.Annotate(
			readstore.NewCenterReadStore,
			fx.As(new(queries.AccessReadStore)),
			fx.As(new(queries.ConnectReadStore)),
		),
		// Payments
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Platform settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PlatformConfigReadQueries)),
		),
		fx.Annotate(
			readstore.NewPlatformConfigReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
