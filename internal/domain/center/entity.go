package center

import (
	"strings"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

var (
	ErrNotFound             = errs.Sentinel("center not found", errs.ErrNotFound)
	ErrNotMember            = errs.Sentinel("not a member of this center", errs.ErrForbidden)
	ErrNotOwner             = errs.Sentinel("only the center owner can do this", errs.ErrForbidden)
	ErrUnsupportedCurrency  = errs.Sentinel("unsupported currency", errs.ErrValidation)
	ErrInvalidPayoutAmount  = errs.Sentinel("payout amount must be greater than zero", errs.ErrValidation)
	ErrOnboardingIncomplete = errs.Sentinel("stripe onboarding is not complete", errs.ErrValidation)
	ErrInsufficientBalance  = errs.Sentinel("amount exceeds available balance", errs.ErrValidation)
)

var allowedCurrencies = []string{"EUR", "USD", "GBP", "CHF"}

func AllowedCurrencies() []string {
	return append([]string(nil), allowedCurrencies...)
}

// ParseCurrency accepts a supported ISO-4217 code in any case.
func ParseCurrency(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range allowedCurrencies {
		if c == code {
			return code, nil
		}
	}
	return "", errs.Wrapf(ErrUnsupportedCurrency, "currency %q", raw)
}

type Center struct {
	id                       uuid.UUID
	ownerID                  uuid.UUID
	name                     string
	currency                 string
	stripeAccountID          *string
	stripeOnboardingComplete bool
}

type ReconstructParams struct {
	ID                       uuid.UUID
	OwnerID                  uuid.UUID
	Name                     string
	Currency                 string
	StripeAccountID          *string
	StripeOnboardingComplete bool
}

func Reconstruct(p ReconstructParams) *Center {
	return &Center{
		id:                       p.ID,
		ownerID:                  p.OwnerID,
		name:                     p.Name,
		currency:                 p.Currency,
		stripeAccountID:          p.StripeAccountID,
		stripeOnboardingComplete: p.StripeOnboardingComplete,
	}
}

// PayoutDestination returns the connected account to route money to, if the
// center may receive funds.
func (c *Center) PayoutDestination() (string, bool) {
	if c.stripeAccountID == nil || *c.stripeAccountID == "" || !c.stripeOnboardingComplete {
		return "", false
	}
	return *c.stripeAccountID, true
}

// ValidatePayout checks a requested amount against the completed-bookings balance.
func (c *Center) ValidatePayout(amount, available decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", ErrInvalidPayoutAmount
	}
	dest, ok := c.PayoutDestination()
	if !ok {
		return "", ErrOnboardingIncomplete
	}
	if amount.GreaterThan(available) {
		return "", errs.Wrapf(ErrInsufficientBalance, "requested %s, available %s", amount.StringFixed(2), available.StringFixed(2))
	}
	return dest, nil
}

func (c *Center) HasStripeAccount() bool {
	return c.stripeAccountID != nil && *c.stripeAccountID != ""
}

func (c *Center) ID() uuid.UUID                  { return c.id }
func (c *Center) OwnerID() uuid.UUID             { return c.ownerID }
func (c *Center) Name() string                   { return c.name }
func (c *Center) Currency() string               { return c.currency }
func (c *Center) StripeAccountID() *string       { return c.stripeAccountID }
func (c *Center) StripeOnboardingComplete() bool { return c.stripeOnboardingComplete }

// Membership is a caller's relation to a center.
type Membership struct {
	IsMember bool
	IsOwner  bool
}

func (m Membership) RequireMember() error {
	if !m.IsMember && !m.IsOwner {
		return ErrNotMember
	}
	return nil
}

func (m Membership) RequireOwner() error {
	if !m.IsOwner {
		return ErrNotOwner
	}
	return nil
}
