package query

import (
	"context"

	"github.com/google/uuid"
)

const getProfileRole = `SELECT role FROM profiles WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetProfileRole(ctx context.Context, db DBTX, id uuid.UUID) (string, error) {
	var role string
	err := db.QueryRow(ctx, getProfileRole, id).Scan(&role)
	return role, err
}
