package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/payment"
	"github.com/Evidive-blue/evidive/internal/domain/transaction"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"
)

type WebhookCommands interface {
	// Handle returns nil for every event it acknowledges, a validation error
	// for a failed signature and any other error for transient failures.
	Handle(ctx context.Context, payload []byte, signature string) error
}

type webhookUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewWebhookCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, logger *slog.Logger) WebhookCommands {
	return &webhookUseCaseImpl{uow: uow, gateway: gateway, clock: clk, logger: logger}
}

func (uc *webhookUseCaseImpl) Handle(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	event, err := uc.gateway.ParseWebhook(payload, signature)
	if err != nil {
		uc.logger.WarnContext(ctx, "webhook rejected", "error", err.Error())
		return err
	}

	switch e := event.(type) {
	case payment.CheckoutCompleted:
		return uc.onCheckoutCompleted(ctx, e)
	case payment.PaymentSucceeded:
		return uc.onPaymentSucceeded(ctx, e)
	case payment.ChargeRefunded:
		return uc.onChargeRefunded(ctx, e)
	case payment.AccountUpdated:
		return uc.onAccountUpdated(ctx, e)
	case payment.Ignored:
		uc.logger.DebugContext(ctx, "unhandled webhook event", "event_id", e.EventID, "type", e.Type)
		return nil
	default:
		return nil
	}
}

// onCheckoutCompleted records the settlement exactly once per payment intent.
// The exists check handles sequential redelivery; the unique index handles
// concurrent redelivery.
func (uc *webhookUseCaseImpl) onCheckoutCompleted(ctx context.Context, e payment.CheckoutCompleted) error {
	log := uc.logger.With("event_id", e.EventID, "payment_intent", e.PaymentIntentID)

	bookingID, ok := payment.BookingID(e.BookingRef)
	if !ok {
		log.WarnContext(ctx, "checkout session without booking metadata", "booking_ref", e.BookingRef)
		return nil
	}
	if e.PaymentIntentID == "" {
		log.WarnContext(ctx, "checkout session without payment intent", "booking_id", bookingID)
		return nil
	}

	recorded := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().TransactionExists(ctx, e.PaymentIntentID)
		if err != nil {
			return err
		}
		if exists {
			log.InfoContext(ctx, "transaction already recorded")
			return nil
		}

		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				log.WarnContext(ctx, "checkout completed for unknown booking", "booking_id", bookingID)
				return nil
			}
			return err
		}

		t, err := transaction.NewFromCheckout(transaction.CheckoutSettlement{
			BookingID:        b.ID(),
			PaymentIntentID:  e.PaymentIntentID,
			AmountTotalCents: e.AmountTotalCents,
			Currency:         e.Currency,
			CommissionRate:   b.CommissionRate(),
			BookingCurrency:  b.Currency(),
		}, uc.clock.Now())
		if err != nil {
			log.WarnContext(ctx, "unusable checkout settlement", "booking_id", bookingID, "error", err.Error())
			return nil
		}

		if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
			return err
		}
		recorded = true
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			log.InfoContext(ctx, "concurrent delivery already recorded the transaction")
			return nil
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			log.WarnContext(ctx, "booking removed before transaction insert", "booking_id", bookingID)
			return nil
		default:
			return err
		}
	}

	if recorded {
		log.InfoContext(ctx, "transaction recorded", "booking_id", bookingID, "amount_cents", e.AmountTotalCents)
	}
	return nil
}

// onPaymentSucceeded confirms a pending booking; a guard miss is normal when
// the booking was already confirmed or cancelled.
func (uc *webhookUseCaseImpl) onPaymentSucceeded(ctx context.Context, e payment.PaymentSucceeded) error {
	log := uc.logger.With("event_id", e.EventID, "payment_intent", e.PaymentIntentID)

	bookingID, ok := payment.BookingID(e.BookingRef)
	if !ok {
		log.DebugContext(ctx, "payment intent without booking metadata")
		return nil
	}

	var moved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		moved, err = tx.Bookings().Transition(ctx, tx.DB(), bookingID, booking.StatusConfirmed)
		return err
	})
	if err != nil {
		return err
	}

	if !moved {
		log.DebugContext(ctx, "booking not pending, confirmation skipped", "booking_id", bookingID)
		return nil
	}
	log.InfoContext(ctx, "booking confirmed by payment", "booking_id", bookingID)
	return nil
}

func (uc *webhookUseCaseImpl) onChargeRefunded(ctx context.Context, e payment.ChargeRefunded) error {
	log := uc.logger.With("event_id", e.EventID, "payment_intent", e.PaymentIntentID)
	if e.PaymentIntentID == "" {
		log.WarnContext(ctx, "refunded charge without payment intent")
		return nil
	}

	var matched bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		matched, err = tx.Transactions().MarkRefunded(ctx, tx.DB(), e.PaymentIntentID)
		return err
	})
	if err != nil {
		return err
	}

	if !matched {
		log.InfoContext(ctx, "refund for unrecorded payment intent")
		return nil
	}
	log.InfoContext(ctx, "transaction marked refunded")
	return nil
}

func (uc *webhookUseCaseImpl) onAccountUpdated(ctx context.Context, e payment.AccountUpdated) error {
	log := uc.logger.With("event_id", e.EventID, "account_id", e.AccountID)
	if e.AccountID == "" {
		return nil
	}

	var matched bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		matched, err = tx.Centers().SetOnboardingByAccount(ctx, tx.DB(), e.AccountID, e.ChargesEnabled)
		return err
	})
	if err != nil {
		return err
	}

	if !matched {
		log.InfoContext(ctx, "account update for unknown center")
		return nil
	}
	log.InfoContext(ctx, "center onboarding status synced", "charges_enabled", e.ChargesEnabled)
	return nil
}
