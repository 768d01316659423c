package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	GetServiceByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Service, error)
	GetCenterByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Center, error)
	ListActiveServicesByCenter(ctx context.Context, db query.DBTX, centerID uuid.UUID) ([]query.Service, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      query.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db query.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}

	snapshot := &shared.ServiceSnapshot{
		ID:          row.ID,
		CenterID:    row.CenterID,
		Name:        row.Name,
		Active:      row.IsActive,
		Price:       row.Price,
		Currency:    row.Currency,
		MaxCapacity: int(row.MaxCapacity),
	}
	if row.MinParticipants.Valid {
		n := int(row.MinParticipants.Int32)
		snapshot.MinParticipants = &n
	}
	return snapshot, nil
}

func (r *ServiceReadStore) CenterExists(ctx context.Context, centerID uuid.UUID) (bool, error) {
	_, err := r.queries.GetCenterByID(ctx, r.db, centerID)
	if pgconv.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to find center", err)
	}
	return true, nil
}

func (r *ServiceReadStore) ListActiveByCenter(ctx context.Context, centerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServicesByCenter(ctx, r.db, centerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		v := &queries.ServiceView{
			ID:          row.ID,
			CenterID:    row.CenterID,
			Name:        row.Name,
			Price:       row.Price,
			Currency:    row.Currency,
			MaxCapacity: int(row.MaxCapacity),
		}
		if row.MinParticipants.Valid {
			n := int(row.MinParticipants.Int32)
			v.MinParticipants = &n
		}
		views = append(views, v)
	}
	return views, nil
}
