package queries

import (
	"context"

	"github.com/google/uuid"
)

type ConnectQueries interface {
	OwnedCenters(ctx context.Context, actor uuid.UUID) ([]*StripeConfigView, error)
}

type ConnectReadStore interface {
	ListOwnedCenters(ctx context.Context, ownerID uuid.UUID) ([]*StripeConfigView, error)
}

type connectQueriesImpl struct {
	store ConnectReadStore
}

func NewConnectQueries(store ConnectReadStore) ConnectQueries {
	return &connectQueriesImpl{store: store}
}

func (q *connectQueriesImpl) OwnedCenters(ctx context.Context, actor uuid.UUID) ([]*StripeConfigView, error) {
	return q.store.ListOwnedCenters(ctx, actor)
}
