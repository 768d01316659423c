package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CenterPageParams struct {
	CenterID uuid.UUID
	Limit    int32
	Offset   int32
}

type CommissionRow struct {
	BookingID         uuid.UUID
	BookingDate       time.Time
	TotalPrice        decimal.Decimal
	CommissionRate    decimal.Decimal
	CommissionAmount  decimal.Decimal
	Currency          string
	Status            string
	ServiceName       pgtype.Text
	ClientDisplayName pgtype.Text
	CreatedAt         time.Time
}

const listCommissionsByCenter = `
SELECT b.id, b.booking_date, b.total_price, b.commission_rate, b.commission_amount,
       b.currency, b.status, s.name, p.display_name, b.created_at
FROM bookings b
LEFT JOIN services s ON s.id = b.service_id AND s.deleted_at IS NULL
LEFT JOIN profiles p ON p.id = b.client_id AND p.deleted_at IS NULL
WHERE b.center_id = $1
  AND b.deleted_at IS NULL
ORDER BY b.created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListCommissionsByCenter(ctx context.Context, db DBTX, arg CenterPageParams) ([]CommissionRow, error) {
	rows, err := db.Query(ctx, listCommissionsByCenter, arg.CenterID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CommissionRow{}
	for rows.Next() {
		var i CommissionRow
		if err := rows.Scan(
			&i.BookingID, &i.BookingDate, &i.TotalPrice, &i.CommissionRate, &i.CommissionAmount,
			&i.Currency, &i.Status, &i.ServiceName, &i.ClientDisplayName, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listTransactionsByCenter = `
SELECT t.id, t.booking_id, t.stripe_payment_intent_id, t.amount, t.platform_fee, t.vendor_amount,
       t.currency, t.status, t.created_at
FROM transactions t
JOIN bookings b ON b.id = t.booking_id AND b.deleted_at IS NULL
WHERE b.center_id = $1
  AND t.deleted_at IS NULL
ORDER BY t.created_at DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListTransactionsByCenter(ctx context.Context, db DBTX, arg CenterPageParams) ([]Transaction, error) {
	rows, err := db.Query(ctx, listTransactionsByCenter, arg.CenterID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Transaction{}
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID, &i.BookingID, &i.StripePaymentIntentID, &i.Amount, &i.PlatformFee, &i.VendorAmount,
			&i.Currency, &i.Status, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type CenterRevenueRow struct {
	TotalRevenue     decimal.Decimal
	TotalCommission  decimal.Decimal
	PendingRevenue   decimal.Decimal
	CompletedRevenue decimal.Decimal
	TransactionCount int64
	Currency         string
}

const getCenterRevenue = `
SELECT
	COALESCE(SUM(b.total_price) FILTER (WHERE b.status IN ('confirmed', 'completed')), 0)::numeric,
	COALESCE(SUM(b.commission_amount) FILTER (WHERE b.status IN ('confirmed', 'completed')), 0)::numeric,
	COALESCE(SUM(b.total_price) FILTER (WHERE b.status = 'pending'), 0)::numeric,
	COALESCE(SUM(b.total_price) FILTER (WHERE b.status = 'completed'), 0)::numeric,
	(SELECT COUNT(*)
	   FROM transactions t
	   JOIN bookings tb ON tb.id = t.booking_id
	  WHERE tb.center_id = $1 AND t.deleted_at IS NULL),
	(SELECT c.currency FROM centers c WHERE c.id = $1)
FROM bookings b
WHERE b.center_id = $1 AND b.deleted_at IS NULL`

func (q *Queries) GetCenterRevenue(ctx context.Context, db DBTX, centerID uuid.UUID) (CenterRevenueRow, error) {
	var r CenterRevenueRow
	var currency pgtype.Text
	err := db.QueryRow(ctx, getCenterRevenue, centerID).Scan(
		&r.TotalRevenue, &r.TotalCommission, &r.PendingRevenue, &r.CompletedRevenue, &r.TransactionCount, &currency,
	)
	r.Currency = currency.String
	return r, err
}
