package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const bookingColumns = `id, client_id, center_id, service_id, booking_date, time_slot, participants,
	unit_price, total_price, commission_rate, commission_amount, currency, client_note,
	status, created_at, updated_at, confirmed_at, cancelled_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.ClientID, &b.CenterID, &b.ServiceID, &b.BookingDate, &b.TimeSlot, &b.Participants,
		&b.UnitPrice, &b.TotalPrice, &b.CommissionRate, &b.CommissionAmount, &b.Currency, &b.ClientNote,
		&b.Status, &b.CreatedAt, &b.UpdatedAt, &b.ConfirmedAt, &b.CancelledAt, &b.CompletedAt,
	)
	return b, err
}

const createBooking = `
INSERT INTO bookings (
	id, client_id, center_id, service_id, booking_date, time_slot, participants,
	unit_price, total_price, commission_rate, commission_amount, currency, client_note,
	status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
RETURNING id`

type CreateBookingParams struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	CenterID         uuid.UUID
	ServiceID        pgtype.UUID
	BookingDate      pgtype.Date
	TimeSlot         string
	Participants     int32
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	Currency         string
	ClientNote       pgtype.Text
	Status           string
	CreatedAt        time.Time
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID, arg.ClientID, arg.CenterID, arg.ServiceID, arg.BookingDate, arg.TimeSlot, arg.Participants,
		arg.UnitPrice, arg.TotalPrice, arg.CommissionRate, arg.CommissionAmount, arg.Currency, arg.ClientNote,
		arg.Status, arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getBookingByID = `SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

// Each timestamp is stamped only when the row enters the matching status, so
// a lost race never overwrites the winner's timestamp.
const transitionBookingStatus = `
UPDATE bookings
SET status       = $2::text,
    confirmed_at = CASE WHEN $2::text = 'confirmed' THEN now() ELSE confirmed_at END,
    cancelled_at = CASE WHEN $2::text = 'cancelled' THEN now() ELSE cancelled_at END,
    completed_at = CASE WHEN $2::text = 'completed' THEN now() ELSE completed_at END,
    updated_at   = now()
WHERE id = $1
  AND status = ANY($3::text[])
  AND deleted_at IS NULL`

type TransitionBookingStatusParams struct {
	ID           uuid.UUID
	ToStatus     string
	FromStatuses []string
}

func (q *Queries) TransitionBookingStatus(ctx context.Context, db DBTX, arg TransitionBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, transitionBookingStatus, arg.ID, arg.ToStatus, arg.FromStatuses)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type BookingListRow struct {
	Booking
	ServiceName pgtype.Text
	CenterName  string
}

const listBookingsByClient = `
SELECT b.id, b.client_id, b.center_id, b.service_id, b.booking_date, b.time_slot, b.participants,
       b.unit_price, b.total_price, b.commission_rate, b.commission_amount, b.currency, b.client_note,
       b.status, b.created_at, b.updated_at, b.confirmed_at, b.cancelled_at, b.completed_at,
       s.name, c.name
FROM bookings b
JOIN centers c ON c.id = b.center_id
LEFT JOIN services s ON s.id = b.service_id
WHERE b.client_id = $1
  AND b.deleted_at IS NULL
  AND ($2::text IS NULL OR b.status = $2::text)
ORDER BY b.created_at DESC
LIMIT $3`

type ListBookingsByClientParams struct {
	ClientID uuid.UUID
	Status   pgtype.Text
	Limit    int32
}

func (q *Queries) ListBookingsByClient(ctx context.Context, db DBTX, arg ListBookingsByClientParams) ([]BookingListRow, error) {
	rows, err := db.Query(ctx, listBookingsByClient, arg.ClientID, arg.Status, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []BookingListRow{}
	for rows.Next() {
		var i BookingListRow
		if err := rows.Scan(
			&i.ID, &i.ClientID, &i.CenterID, &i.ServiceID, &i.BookingDate, &i.TimeSlot, &i.Participants,
			&i.UnitPrice, &i.TotalPrice, &i.CommissionRate, &i.CommissionAmount, &i.Currency, &i.ClientNote,
			&i.Status, &i.CreatedAt, &i.UpdatedAt, &i.ConfirmedAt, &i.CancelledAt, &i.CompletedAt,
			&i.ServiceName, &i.CenterName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const isDateBlocked = `
SELECT EXISTS (
	SELECT 1 FROM blocked_dates WHERE center_id = $1 AND blocked_date = $2
)`

func (q *Queries) IsDateBlocked(ctx context.Context, db DBTX, centerID uuid.UUID, date pgtype.Date) (bool, error) {
	var blocked bool
	err := db.QueryRow(ctx, isDateBlocked, centerID, date).Scan(&blocked)
	return blocked, err
}

const listTakenSlots = `
SELECT time_slot
FROM bookings
WHERE service_id = $1
  AND booking_date = $2
  AND status <> 'cancelled'
  AND deleted_at IS NULL
ORDER BY time_slot`

func (q *Queries) ListTakenSlots(ctx context.Context, db DBTX, serviceID uuid.UUID, date pgtype.Date) ([]string, error) {
	rows, err := db.Query(ctx, listTakenSlots, serviceID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

const isSlotTaken = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE service_id = $1
	  AND booking_date = $2
	  AND time_slot = $3
	  AND status <> 'cancelled'
	  AND deleted_at IS NULL
)`

func (q *Queries) IsSlotTaken(ctx context.Context, db DBTX, serviceID uuid.UUID, date pgtype.Date, slot string) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx, isSlotTaken, serviceID, date, slot).Scan(&taken)
	return taken, err
}

const getBookingViewByID = `
SELECT b.id, b.client_id, b.center_id, b.service_id, b.booking_date, b.time_slot, b.participants,
       b.unit_price, b.total_price, b.commission_rate, b.commission_amount, b.currency, b.client_note,
       b.status, b.created_at, b.updated_at, b.confirmed_at, b.cancelled_at, b.completed_at,
       s.name, c.name
FROM bookings b
JOIN centers c ON c.id = b.center_id
LEFT JOIN services s ON s.id = b.service_id
WHERE b.id = $1 AND b.deleted_at IS NULL`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingListRow, error) {
	var i BookingListRow
	err := db.QueryRow(ctx, getBookingViewByID, id).Scan(
		&i.ID, &i.ClientID, &i.CenterID, &i.ServiceID, &i.BookingDate, &i.TimeSlot, &i.Participants,
		&i.UnitPrice, &i.TotalPrice, &i.CommissionRate, &i.CommissionAmount, &i.Currency, &i.ClientNote,
		&i.Status, &i.CreatedAt, &i.UpdatedAt, &i.ConfirmedAt, &i.CancelledAt, &i.CompletedAt,
		&i.ServiceName, &i.CenterName,
	)
	return i, err
}
