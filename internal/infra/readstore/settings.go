package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
)

type PlatformConfigReadQueries interface {
	GetPlatformConfigValue(ctx context.Context, db query.DBTX, key string) (string, error)
	ListPlatformConfig(ctx context.Context, db query.DBTX) ([]query.PlatformConfig, error)
}

type PlatformConfigReadStore struct {
	queries PlatformConfigReadQueries
	db      query.DBTX
}

func NewPlatformConfigReadStore(queries PlatformConfigReadQueries, db query.DBTX) *PlatformConfigReadStore {
	return &PlatformConfigReadStore{
		queries: queries,
		db:      db,
	}
}

// Setting returns nil when the key has no row.
func (r *PlatformConfigReadStore) Setting(ctx context.Context, key string) (*string, error) {
	v, err := r.queries.GetPlatformConfigValue(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read platform setting", err)
	}
	return &v, nil
}

func (r *PlatformConfigReadStore) ListSettings(ctx context.Context) ([]*queries.SettingView, error) {
	rows, err := r.queries.ListPlatformConfig(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list platform settings", err)
	}

	items := make([]*queries.SettingView, 0, len(rows))
	for i := range rows {
		v := &queries.SettingView{}
		if err := copyView(v, &rows[i]); err != nil {
			return nil, infra.WrapRepoErr("failed to map platform setting", err)
		}
		items = append(items, v)
	}
	return items, nil
}
