package payment

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Evidive-blue/evidive/internal/domain/payment"
	"github.com/Evidive-blue/evidive/internal/pkg/config"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

const onboardingLinkType = "account_onboarding"

var ErrInvalidPayload = errs.Sentinel("Invalid webhook payload", errs.ErrValidation)

// StripeGateway adapts the Stripe API to commands.PaymentGateway.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return NewStripeGatewayWithBackends(cfg.SecretKey, cfg.WebhookSecret, nil)
}

// NewStripeGatewayWithBackends lets tests point the client at a local server.
func NewStripeGatewayWithBackends(secretKey, webhookSecret string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
	bookingRef := req.BookingID.String()
	currency := strings.ToLower(req.Currency)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(bookingRef),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{payment.MetadataBookingID: bookingRef},
		},
	}
	params.Context = ctx
	params.AddMetadata(payment.MetadataBookingID, bookingRef)

	if req.Destination != nil {
		params.PaymentIntentData.ApplicationFeeAmount = stripe.Int64(req.ApplicationFeeCents)
		params.PaymentIntentData.TransferData = &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
			Destination: stripe.String(*req.Destination),
		}
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, gatewayError(err, "create checkout session")
	}
	return &commands.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, req commands.TransferRequest) (*commands.Transfer, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Destination: stripe.String(req.Destination),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	params.AddMetadata("center_id", req.CenterID.String())
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	transfer, err := g.api.Transfers.New(params)
	if err != nil {
		return nil, gatewayError(err, "create transfer")
	}
	return &commands.Transfer{ID: transfer.ID}, nil
}

func (g *StripeGateway) CreateConnectedAccount(ctx context.Context, req commands.ConnectedAccountRequest) (string, error) {
	params := &stripe.AccountParams{
		Type: stripe.String(string(stripe.AccountTypeExpress)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	if req.Email != "" {
		params.Email = stripe.String(req.Email)
	}
	params.Context = ctx
	params.AddMetadata("center_id", req.CenterID.String())

	account, err := g.api.Accounts.New(params)
	if err != nil {
		return "", gatewayError(err, "create connected account")
	}
	return account.ID, nil
}

func (g *StripeGateway) CreateOnboardingLink(ctx context.Context, req commands.OnboardingLinkRequest) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(req.AccountID),
		RefreshURL: stripe.String(req.RefreshURL),
		ReturnURL:  stripe.String(req.ReturnURL),
		Type:       stripe.String(onboardingLinkType),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", gatewayError(err, "create onboarding link")
	}
	return link.URL, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (payment.Event, error) {
	if signature == "" {
		return nil, commands.ErrMissingSignature
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errs.Wrap(commands.ErrInvalidSignature, err.Error())
	}
	return decodeEvent(event)
}

func decodeEvent(event stripe.Event) (payment.Event, error) {
	raw := event.Data.Raw
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(raw, &session); err != nil {
			return nil, errs.Wrapf(ErrInvalidPayload, "decode checkout session: %v", err)
		}
		out := payment.CheckoutCompleted{
			EventID:          event.ID,
			BookingRef:       session.Metadata[payment.MetadataBookingID],
			AmountTotalCents: session.AmountTotal,
			Currency:         strings.ToUpper(string(session.Currency)),
		}
		if out.BookingRef == "" {
			out.BookingRef = session.ClientReferenceID
		}
		if session.PaymentIntent != nil {
			out.PaymentIntentID = session.PaymentIntent.ID
		}
		return out, nil

	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(raw, &intent); err != nil {
			return nil, errs.Wrapf(ErrInvalidPayload, "decode payment intent: %v", err)
		}
		return payment.PaymentSucceeded{
			EventID:         event.ID,
			PaymentIntentID: intent.ID,
			BookingRef:      intent.Metadata[payment.MetadataBookingID],
		}, nil

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(raw, &charge); err != nil {
			return nil, errs.Wrapf(ErrInvalidPayload, "decode charge: %v", err)
		}
		out := payment.ChargeRefunded{EventID: event.ID}
		if charge.PaymentIntent != nil {
			out.PaymentIntentID = charge.PaymentIntent.ID
		}
		return out, nil

	case stripe.EventTypeAccountUpdated:
		var account stripe.Account
		if err := json.Unmarshal(raw, &account); err != nil {
			return nil, errs.Wrapf(ErrInvalidPayload, "decode account: %v", err)
		}
		return payment.AccountUpdated{
			EventID:        event.ID,
			AccountID:      account.ID,
			ChargesEnabled: account.ChargesEnabled,
		}, nil

	default:
		return payment.Ignored{EventID: event.ID, Type: string(event.Type)}, nil
	}
}

func gatewayError(err error, op string) error {
	var stripeErr *stripe.Error
	if errs.As(err, &stripeErr) {
		return errs.Mark(errs.Wrapf(err, "stripe %s (type=%s code=%s)", op, stripeErr.Type, stripeErr.Code), errs.ErrGateway)
	}
	return errs.Mark(errs.Wrapf(err, "stripe %s", op), errs.ErrGateway)
}
