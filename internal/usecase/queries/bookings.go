package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccessDenied = errs.Sentinel("you do not have access to this booking", errs.ErrForbidden)

type BookingQueries interface {
	Get(ctx context.Context, actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor uuid.UUID, status *string, limit int) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	access AccessReadStore
}

func NewBookingQueries(store BookingReadStore, access AccessReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, access: access}
}

// Get is visible to the booking's client and to members of its center.
func (q *bookingQueriesImpl) Get(ctx context.Context, actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	if view.ClientID == actor {
		return view, nil
	}

	m, err := q.access.Membership(ctx, view.CenterID, actor)
	if err != nil {
		return nil, err
	}
	if m.RequireMember() != nil {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor uuid.UUID, status *string, limit int) ([]*BookingView, error) {
	var filter *booking.Status
	if status != nil && *status != "" {
		s, err := booking.ParseStatus(*status)
		if err != nil {
			return nil, err
		}
		filter = &s
	}
	return q.store.ListByClient(ctx, actor, filter, int32(ClampLimit(limit))) // #nosec G115 -- clamped
}
