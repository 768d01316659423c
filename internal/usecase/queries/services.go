package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/center"

	"github.com/google/uuid"
)

// ServiceQueries backs the public catalogue; no membership is required.
type ServiceQueries interface {
	ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	CenterExists(ctx context.Context, centerID uuid.UUID) (bool, error)
	ListActiveByCenter(ctx context.Context, centerID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*ServiceView, error) {
	exists, err := q.store.CenterExists(ctx, centerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, center.ErrNotFound
	}
	return q.store.ListActiveByCenter(ctx, centerID)
}
