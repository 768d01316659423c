package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionExistsByPaymentIntent = `
SELECT EXISTS (
	SELECT 1 FROM transactions WHERE stripe_payment_intent_id = $1 AND deleted_at IS NULL
)`

func (q *Queries) TransactionExistsByPaymentIntent(ctx context.Context, db DBTX, paymentIntentID string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, transactionExistsByPaymentIntent, paymentIntentID).Scan(&exists)
	return exists, err
}

const createTransaction = `
INSERT INTO transactions (
	id, booking_id, stripe_payment_intent_id, amount, platform_fee, vendor_amount,
	currency, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

type CreateTransactionParams struct {
	ID                    uuid.UUID
	BookingID             uuid.UUID
	StripePaymentIntentID string
	Amount                decimal.Decimal
	PlatformFee           decimal.Decimal
	VendorAmount          decimal.Decimal
	Currency              string
	Status                string
	CreatedAt             time.Time
}

func (q *Queries) CreateTransaction(ctx context.Context, db DBTX, arg CreateTransactionParams) error {
	_, err := db.Exec(ctx, createTransaction,
		arg.ID, arg.BookingID, arg.StripePaymentIntentID, arg.Amount, arg.PlatformFee, arg.VendorAmount,
		arg.Currency, arg.Status, arg.CreatedAt,
	)
	return err
}

const markTransactionRefunded = `
UPDATE transactions
SET status = 'refunded', updated_at = now()
WHERE stripe_payment_intent_id = $1 AND deleted_at IS NULL`

func (q *Queries) MarkTransactionRefunded(ctx context.Context, db DBTX, paymentIntentID string) (int64, error) {
	tag, err := db.Exec(ctx, markTransactionRefunded, paymentIntentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countTransactionsByBooking = `
SELECT COUNT(*) FROM transactions WHERE booking_id = $1 AND deleted_at IS NULL`

func (q *Queries) CountTransactionsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countTransactionsByBooking, bookingID).Scan(&n)
	return n, err
}
