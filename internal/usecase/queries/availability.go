package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.Sentinel("service not found", errs.ErrNotFound)

type AvailabilityQueries interface {
	Day(ctx context.Context, serviceID uuid.UUID, date booking.Date) (*DayAvailabilityView, error)
	Slot(ctx context.Context, serviceID uuid.UUID, date booking.Date, slot booking.TimeSlot) (bool, error)
}

type AvailabilityReadStore interface {
	ServiceCenter(ctx context.Context, serviceID uuid.UUID) (uuid.UUID, error)
	IsDateBlocked(ctx context.Context, centerID uuid.UUID, date booking.Date) (bool, error)
	TakenSlots(ctx context.Context, serviceID uuid.UUID, date booking.Date) ([]booking.TimeSlot, error)
	IsSlotTaken(ctx context.Context, serviceID uuid.UUID, date booking.Date, slot booking.TimeSlot) (bool, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) Day(ctx context.Context, serviceID uuid.UUID, date booking.Date) (*DayAvailabilityView, error) {
	blocked, err := q.dateBlocked(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}

	var taken []booking.TimeSlot
	if !blocked {
		if taken, err = q.store.TakenSlots(ctx, serviceID, date); err != nil {
			return nil, err
		}
	}

	day := booking.EvaluateDay(blocked, taken)
	view := &DayAvailabilityView{
		Available: day.Available,
		Reason:    day.Reason,
		Slots:     make([]SlotView, 0, len(day.Slots)),
	}
	for _, s := range day.Slots {
		view.Slots = append(view.Slots, SlotView{TimeSlot: s.Slot.String(), Available: s.Available})
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Slot(ctx context.Context, serviceID uuid.UUID, date booking.Date, slot booking.TimeSlot) (bool, error) {
	blocked, err := q.dateBlocked(ctx, serviceID, date)
	if err != nil {
		return false, err
	}
	if blocked {
		return false, nil
	}

	taken, err := q.store.IsSlotTaken(ctx, serviceID, date, slot)
	if err != nil {
		return false, err
	}
	return booking.IsSlotAvailable(false, taken), nil
}

func (q *availabilityQueriesImpl) dateBlocked(ctx context.Context, serviceID uuid.UUID, date booking.Date) (bool, error) {
	centerID, err := q.store.ServiceCenter(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrServiceNotFound
		}
		return false, err
	}
	return q.store.IsDateBlocked(ctx, centerID, date)
}
