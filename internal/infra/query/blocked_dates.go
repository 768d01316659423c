package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listBlockedDates = `
SELECT id, center_id, blocked_date, reason, created_at
FROM blocked_dates
WHERE center_id = $1
ORDER BY blocked_date ASC`

func (q *Queries) ListBlockedDates(ctx context.Context, db DBTX, centerID uuid.UUID) ([]BlockedDate, error) {
	rows, err := db.Query(ctx, listBlockedDates, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []BlockedDate{}
	for rows.Next() {
		var b BlockedDate
		if err := rows.Scan(&b.ID, &b.CenterID, &b.BlockedDate, &b.Reason, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// Returns pgx.ErrNoRows when the day is already blocked for the center.
const createBlockedDate = `
INSERT INTO blocked_dates (center_id, blocked_date, reason)
VALUES ($1, $2, $3)
ON CONFLICT (center_id, blocked_date) DO NOTHING
RETURNING id`

type CreateBlockedDateParams struct {
	CenterID    uuid.UUID
	BlockedDate pgtype.Date
	Reason      pgtype.Text
}

func (q *Queries) CreateBlockedDate(ctx context.Context, db DBTX, arg CreateBlockedDateParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createBlockedDate, arg.CenterID, arg.BlockedDate, arg.Reason).Scan(&id)
	return id, err
}

const deleteBlockedDate = `DELETE FROM blocked_dates WHERE id = $1 AND center_id = $2`

func (q *Queries) DeleteBlockedDate(ctx context.Context, db DBTX, id, centerID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBlockedDate, id, centerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
