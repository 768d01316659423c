package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	CenterID         uuid.UUID
	ServiceID        pgtype.UUID
	BookingDate      time.Time
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
	UpdatedAt        time.Time
	ConfirmedAt      pgtype.Timestamptz
	CancelledAt      pgtype.Timestamptz
	CompletedAt      pgtype.Timestamptz
}

type Service struct {
	ID              uuid.UUID
	CenterID        uuid.UUID
	Name            string
	Price           decimal.Decimal
	Currency        string
	MinParticipants pgtype.Int4
	MaxCapacity     int32
	IsActive        bool
}

type Center struct {
	ID                       uuid.UUID
	OwnerID                  uuid.UUID
	Name                     string
	Currency                 string
	StripeAccountID          pgtype.Text
	StripeOnboardingComplete bool
}

type Transaction struct {
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

type PlatformConfig struct {
	Key         string
	Value       string
	Category    string
	IsSecret    bool
	Description pgtype.Text
	UpdatedAt   time.Time
	UpdatedBy   pgtype.UUID
}

type Coupon struct {
	ID            uuid.UUID
	Code          string
	CenterID      pgtype.UUID
	DiscountType  string
	DiscountValue decimal.Decimal
	MaxUses       int32
	UsedCount     int32
	IsActive      bool
	ExpiresAt     pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	Status           string
	ResultTransferID pgtype.Text
	ResultAmount     decimal.NullDecimal
	ResultCurrency   pgtype.Text
	ExpiresAt        time.Time
}

type BlockedDate struct {
	ID          uuid.UUID
	CenterID    uuid.UUID
	BlockedDate time.Time
	Reason      pgtype.Text
	CreatedAt   time.Time
}
