package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const getServiceByID = `
SELECT id, center_id, name, price, currency, min_participants, max_capacity, is_active
FROM services
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Service, error) {
	var s Service
	err := db.QueryRow(ctx, getServiceByID, id).Scan(
		&s.ID, &s.CenterID, &s.Name, &s.Price, &s.Currency, &s.MinParticipants, &s.MaxCapacity, &s.IsActive,
	)
	return s, err
}

const listActiveServicesByCenter = `
SELECT id, center_id, name, price, currency, min_participants, max_capacity, is_active
FROM services
WHERE center_id = $1 AND is_active = true AND deleted_at IS NULL
ORDER BY name ASC
LIMIT 200`

func (q *Queries) ListActiveServicesByCenter(ctx context.Context, db DBTX, centerID uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listActiveServicesByCenter, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Service{}
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID, &s.CenterID, &s.Name, &s.Price, &s.Currency, &s.MinParticipants, &s.MaxCapacity, &s.IsActive,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const createService = `
INSERT INTO services (
	id, center_id, name, price, currency, min_participants, max_capacity, is_active,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

type CreateServiceParams struct {
	ID              uuid.UUID
	CenterID        uuid.UUID
	Name            string
	Price           decimal.Decimal
	Currency        string
	MinParticipants pgtype.Int4
	MaxCapacity     int32
	IsActive        bool
	CreatedAt       time.Time
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) error {
	_, err := db.Exec(ctx, createService,
		arg.ID, arg.CenterID, arg.Name, arg.Price, arg.Currency, arg.MinParticipants, arg.MaxCapacity, arg.IsActive,
		arg.CreatedAt,
	)
	return err
}
