package repository

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (uuid.UUID, error)
	TransitionBookingStatus(ctx context.Context, db query.DBTX, arg query.TransitionBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create surfaces a lost slot race as DUPLICATE_KEY via ux_bookings_active_slot.
func (r *BookingRepository) Create(ctx context.Context, tx query.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Transition(ctx context.Context, tx query.DBTX, id uuid.UUID, to booking.Status) (bool, error) {
	guard := booking.GuardFor(to)
	if len(guard) == 0 {
		return false, nil
	}
	affected, err := r.queries.TransitionBookingStatus(ctx, tx, query.TransitionBookingStatusParams{
		ID:           id,
		ToStatus:     to.String(),
		FromStatuses: booking.StatusStrings(guard),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition booking", err)
	}
	return affected > 0, nil
}
