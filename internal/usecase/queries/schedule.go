package queries

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	BlockedDates(ctx context.Context, actor, centerID uuid.UUID) ([]*BlockedDateView, error)
}

type ScheduleReadStore interface {
	ListBlockedDates(ctx context.Context, centerID uuid.UUID) ([]*BlockedDateView, error)
}

type scheduleQueriesImpl struct {
	store  ScheduleReadStore
	access AccessReadStore
}

func NewScheduleQueries(store ScheduleReadStore, access AccessReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store, access: access}
}

func (q *scheduleQueriesImpl) BlockedDates(ctx context.Context, actor, centerID uuid.UUID) ([]*BlockedDateView, error) {
	m, err := q.access.Membership(ctx, centerID, actor)
	if err != nil {
		return nil, err
	}
	if err := m.RequireMember(); err != nil {
		return nil, err
	}
	return q.store.ListBlockedDates(ctx, centerID)
}
