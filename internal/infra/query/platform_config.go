package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getPlatformConfigValue = `SELECT value FROM platform_config WHERE key = $1`

func (q *Queries) GetPlatformConfigValue(ctx context.Context, db DBTX, key string) (string, error) {
	var v string
	err := db.QueryRow(ctx, getPlatformConfigValue, key).Scan(&v)
	return v, err
}

const listPlatformConfig = `
SELECT key, value, category, is_secret, description, updated_at, updated_by
FROM platform_config
ORDER BY category ASC, key ASC`

func (q *Queries) ListPlatformConfig(ctx context.Context, db DBTX) ([]PlatformConfig, error) {
	rows, err := db.Query(ctx, listPlatformConfig)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PlatformConfig{}
	for rows.Next() {
		var i PlatformConfig
		if err := rows.Scan(&i.Key, &i.Value, &i.Category, &i.IsSecret, &i.Description, &i.UpdatedAt, &i.UpdatedBy); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updatePlatformConfig = `
UPDATE platform_config
SET value = $2, updated_by = $3, updated_at = now()
WHERE key = $1`

func (q *Queries) UpdatePlatformConfig(ctx context.Context, db DBTX, key, value string, updatedBy uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, updatePlatformConfig, key, value, pgtype.UUID{Bytes: updatedBy, Valid: true})
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
