package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/domain/user"
	"github.com/Evidive-blue/evidive/internal/infra"

	"github.com/google/uuid"
)

type AccessReadStore interface {
	Membership(ctx context.Context, centerID, profileID uuid.UUID) (center.Membership, error)
	ProfileRole(ctx context.Context, profileID uuid.UUID) (user.Role, error)
}

type AccessQueries interface {
	RequireMember(ctx context.Context, actor, centerID uuid.UUID) error
	RequireAdmin(ctx context.Context, actor uuid.UUID) error
}

type accessQueriesImpl struct {
	store AccessReadStore
}

func NewAccessQueries(store AccessReadStore) AccessQueries {
	return &accessQueriesImpl{store: store}
}

func (q *accessQueriesImpl) RequireMember(ctx context.Context, actor, centerID uuid.UUID) error {
	m, err := q.store.Membership(ctx, centerID, actor)
	if err != nil {
		return err
	}
	return m.RequireMember()
}

// RequireAdmin reads the stored role; a caller without a profile row is not an admin.
func (q *accessQueriesImpl) RequireAdmin(ctx context.Context, actor uuid.UUID) error {
	role, err := q.store.ProfileRole(ctx, actor)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrAdminRequired
		}
		return err
	}
	return user.RequireAdmin(role)
}
