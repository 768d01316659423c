package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ClampLimit applies the list defaults shared by every paged endpoint.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

type Page struct {
	Limit  int
	Offset int
}

func (p Page) Normalize() Page {
	return Page{Limit: ClampLimit(p.Limit), Offset: ClampOffset(p.Offset)}
}

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID       `json:"id"`
	ClientID         uuid.UUID       `json:"client_id"`
	CenterID         uuid.UUID       `json:"center_id"`
	CenterName       string          `json:"center_name,omitempty"`
	ServiceID        *uuid.UUID      `json:"service_id,omitempty"`
	ServiceName      *string         `json:"service_name,omitempty"`
	BookingDate      string          `json:"booking_date"`
	TimeSlot         string          `json:"time_slot"`
	Participants     int32           `json:"participants"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Currency         string          `json:"currency"`
	ClientNote       *string         `json:"client_note,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	ConfirmedAt      *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

type SlotView struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type DayAvailabilityView struct {
	Available bool       `json:"available"`
	Reason    string     `json:"reason,omitempty"`
	Slots     []SlotView `json:"slots"`
}

type CommissionView struct {
	BookingID         uuid.UUID       `json:"booking_id"`
	BookingDate       string          `json:"booking_date"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	ServiceName       *string         `json:"service_name,omitempty"`
	ClientDisplayName *string         `json:"client_display_name,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID                    uuid.UUID       `json:"id"`
	BookingID             uuid.UUID       `json:"booking_id"`
	StripePaymentIntentID string          `json:"stripe_payment_intent_id"`
	Amount                decimal.Decimal `json:"amount"`
	PlatformFee           decimal.Decimal `json:"platform_fee"`
	VendorAmount          decimal.Decimal `json:"vendor_amount"`
	Currency              string          `json:"currency"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
}

type RevenueView struct {
	CenterID         uuid.UUID       `json:"center_id"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	NetRevenue       decimal.Decimal `json:"net_revenue"`
	PendingRevenue   decimal.Decimal `json:"pending_revenue"`
	CompletedRevenue decimal.Decimal `json:"completed_revenue"`
	TransactionCount int64           `json:"transaction_count"`
	Currency         string          `json:"currency"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

type StripeConfigView struct {
	CenterID                 uuid.UUID `json:"center_id"`
	CenterName               string    `json:"center_name"`
	StripeAccountID          *string   `json:"stripe_account_id"`
	StripeOnboardingComplete bool      `json:"stripe_onboarding_complete"`
	Currency                 string    `json:"currency"`
}

type SettingView struct {
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	Category    string     `json:"category"`
	IsSecret    bool       `json:"is_secret"`
	Description *string    `json:"description,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UpdatedBy   *uuid.UUID `json:"updated_by,omitempty"`
}

type CouponValidationView struct {
	Valid         bool             `json:"valid"`
	CouponID      *uuid.UUID       `json:"coupon_id,omitempty"`
	DiscountType  *string          `json:"discount_type,omitempty"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
	Message       string           `json:"message"`
}

type BlockedDateView struct {
	ID          uuid.UUID `json:"id"`
	CenterID    uuid.UUID `json:"center_id"`
	BlockedDate string    `json:"blocked_date"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceView struct {
	ID              uuid.UUID       `json:"id"`
	CenterID        uuid.UUID       `json:"center_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	MinParticipants *int            `json:"min_participants,omitempty"`
	MaxCapacity     int             `json:"max_capacity"`
}
