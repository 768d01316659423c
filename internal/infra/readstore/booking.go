package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository/converter"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	GetBookingViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingListRow, error)
	ListBookingsByClient(ctx context.Context, db query.DBTX, arg query.ListBookingsByClientParams) ([]query.BookingListRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) ListByClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, limit int32) ([]*queries.BookingView, error) {
	var filter pgtype.Text
	if status != nil {
		filter = pgtype.Text{String: status.String(), Valid: true}
	}

	rows, err := r.queries.ListBookingsByClient(ctx, r.db, query.ListBookingsByClientParams{
		ClientID: clientID,
		Status:   filter,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	items := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// Snapshot loads the aggregate for command-side decisions.
func (r *BookingReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return converter.BookingFromRow(row)
}

func toBookingView(row query.BookingListRow) (*queries.BookingView, error) {
	v := &queries.BookingView{}
	if err := copyView(v, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking view", err)
	}
	v.CenterName = row.CenterName
	return v, nil
}
