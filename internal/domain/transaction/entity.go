package transaction

import (
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusRefunded  Status = "refunded"
)

var (
	ErrMissingPaymentIntent = errs.Sentinel("payment intent id is required", errs.ErrValidation)
	ErrNegativeAmount       = errs.Sentinel("settled amount cannot be negative", errs.ErrValidation)
	ErrUnknownStatus        = errs.Sentinel("unknown transaction status", errs.ErrValidation)
)

func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusSucceeded, StatusRefunded:
		return s, nil
	default:
		return "", errs.Wrapf(ErrUnknownStatus, "status %q", raw)
	}
}

// Transaction records one settled payment, keyed by the gateway's payment intent.
type Transaction struct {
	id              uuid.UUID
	bookingID       uuid.UUID
	paymentIntentID string
	amount          decimal.Decimal
	platformFee     decimal.Decimal
	vendorAmount    decimal.Decimal
	currency        string
	status          Status
	createdAt       time.Time
}

type CheckoutSettlement struct {
	BookingID        uuid.UUID
	PaymentIntentID  string
	AmountTotalCents int64
	Currency         string
	CommissionRate   decimal.Decimal
	BookingCurrency  string
}

// NewFromCheckout splits the settled gross with the booking's rate snapshot.
// Session currency wins over the booking's when present.
func NewFromCheckout(s CheckoutSettlement, now time.Time) (*Transaction, error) {
	if s.PaymentIntentID == "" {
		return nil, ErrMissingPaymentIntent
	}
	if s.AmountTotalCents < 0 {
		return nil, ErrNegativeAmount
	}

	split := booking.Settle(money.FromMinorUnits(s.AmountTotalCents), s.CommissionRate)
	return &Transaction{
		id:              uuid.New(),
		bookingID:       s.BookingID,
		paymentIntentID: s.PaymentIntentID,
		amount:          split.Gross,
		platformFee:     split.Fee,
		vendorAmount:    split.Net,
		currency:        money.NormalizeCurrency(s.Currency, s.BookingCurrency),
		status:          StatusSucceeded,
		createdAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	BookingID       uuid.UUID
	PaymentIntentID string
	Amount          decimal.Decimal
	PlatformFee     decimal.Decimal
	VendorAmount    decimal.Decimal
	Currency        string
	Status          Status
	CreatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Transaction {
	return &Transaction{
		id:              p.ID,
		bookingID:       p.BookingID,
		paymentIntentID: p.PaymentIntentID,
		amount:          p.Amount,
		platformFee:     p.PlatformFee,
		vendorAmount:    p.VendorAmount,
		currency:        p.Currency,
		status:          p.Status,
		createdAt:       p.CreatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID                 { return t.id }
func (t *Transaction) BookingID() uuid.UUID          { return t.bookingID }
func (t *Transaction) PaymentIntentID() string       { return t.paymentIntentID }
func (t *Transaction) Amount() decimal.Decimal       { return t.amount }
func (t *Transaction) PlatformFee() decimal.Decimal  { return t.platformFee }
func (t *Transaction) VendorAmount() decimal.Decimal { return t.vendorAmount }
func (t *Transaction) Currency() string              { return t.currency }
func (t *Transaction) Status() Status                { return t.status }
func (t *Transaction) CreatedAt() time.Time          { return t.createdAt }
