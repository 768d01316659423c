package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Evidive-blue/evidive/internal/domain/payment"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingSignature = errs.Sentinel("Missing Stripe-Signature header", errs.ErrValidation)
	ErrInvalidSignature = errs.Sentinel("Invalid webhook signature", errs.ErrValidation)
)

// PaymentGateway is the card-payment processor as seen by the write side.
// Errors other than signature failures are marked errs.ErrGateway.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error)
	CreateConnectedAccount(ctx context.Context, req ConnectedAccountRequest) (string, error)
	CreateOnboardingLink(ctx context.Context, req OnboardingLinkRequest) (string, error)
	// ParseWebhook verifies the signature before decoding anything.
	ParseWebhook(payload []byte, signature string) (payment.Event, error)
}

type CheckoutSessionRequest struct {
	BookingID   uuid.UUID
	ProductName string
	AmountCents int64
	Currency    string
	// Destination is set only for centers that finished onboarding.
	Destination         *string
	ApplicationFeeCents int64
	SuccessURL          string
	CancelURL           string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type TransferRequest struct {
	CenterID    uuid.UUID
	Destination string
	AmountCents int64
	Currency    string
	Description string
	// IdempotencyKey is forwarded to the provider so a retried request
	// cannot create a second transfer.
	IdempotencyKey string
}

type Transfer struct {
	ID string
}

type ConnectedAccountRequest struct {
	CenterID uuid.UUID
	Email    string
}

type OnboardingLinkRequest struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

// FrontendURLs builds the redirect targets handed to the gateway.
type FrontendURLs struct {
	Base string
}

func NewFrontendURLs(base string) FrontendURLs {
	return FrontendURLs{Base: strings.TrimRight(base, "/")}
}

func (u FrontendURLs) BookingSuccess(id uuid.UUID) string {
	return fmt.Sprintf("%s/bookings/%s?status=success", u.Base, id)
}

func (u FrontendURLs) BookingCancelled(id uuid.UUID) string {
	return fmt.Sprintf("%s/bookings/%s?status=cancelled", u.Base, id)
}

func (u FrontendURLs) StripeRefresh() string {
	return u.Base + "/dashboard/stripe/refresh"
}

func (u FrontendURLs) StripeReturn() string {
	return u.Base + "/dashboard/stripe/return"
}
