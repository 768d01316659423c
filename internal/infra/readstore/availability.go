package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository/converter"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadQueries interface {
	GetServiceByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Service, error)
	IsDateBlocked(ctx context.Context, db query.DBTX, centerID uuid.UUID, date pgtype.Date) (bool, error)
	ListTakenSlots(ctx context.Context, db query.DBTX, serviceID uuid.UUID, date pgtype.Date) ([]string, error)
	IsSlotTaken(ctx context.Context, db query.DBTX, serviceID uuid.UUID, date pgtype.Date, slot string) (bool, error)
	ListBlockedDates(ctx context.Context, db query.DBTX, centerID uuid.UUID) ([]query.BlockedDate, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      query.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db query.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ServiceCenter(ctx context.Context, serviceID uuid.UUID) (uuid.UUID, error) {
	svc, err := r.queries.GetServiceByID(ctx, r.db, serviceID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find service", err)
	}
	return svc.CenterID, nil
}

func (r *AvailabilityReadStore) IsDateBlocked(ctx context.Context, centerID uuid.UUID, date booking.Date) (bool, error) {
	blocked, err := r.queries.IsDateBlocked(ctx, r.db, centerID, converter.DateToPgtype(date))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check blocked date", err)
	}
	return blocked, nil
}

func (r *AvailabilityReadStore) TakenSlots(ctx context.Context, serviceID uuid.UUID, date booking.Date) ([]booking.TimeSlot, error) {
	raw, err := r.queries.ListTakenSlots(ctx, r.db, serviceID, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list taken slots", err)
	}

	slots := make([]booking.TimeSlot, 0, len(raw))
	for _, s := range raw {
		slot, err := booking.ParseTimeSlot(s)
		if err != nil {
			return nil, errs.Wrapf(err, "stored slot %q", s)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *AvailabilityReadStore) IsSlotTaken(ctx context.Context, serviceID uuid.UUID, date booking.Date, slot booking.TimeSlot) (bool, error) {
	taken, err := r.queries.IsSlotTaken(ctx, r.db, serviceID, converter.DateToPgtype(date), slot.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot", err)
	}
	return taken, nil
}

func (r *AvailabilityReadStore) ListBlockedDates(ctx context.Context, centerID uuid.UUID) ([]*queries.BlockedDateView, error) {
	rows, err := r.queries.ListBlockedDates(ctx, r.db, centerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}

	views := make([]*queries.BlockedDateView, 0, len(rows))
	for i := range rows {
		v := &queries.BlockedDateView{}
		if err := copyView(v, &rows[i]); err != nil {
			return nil, errs.Wrap(err, "failed to map blocked date")
		}
		views = append(views, v)
	}
	return views, nil
}
