package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/money"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultProductName = "Dive booking"

var ErrBookingNotPayable = errs.Sentinel("only pending bookings can be paid", errs.ErrValidation)

type CheckoutCommands interface {
	// Initiate returns the hosted checkout URL. Booking state is untouched;
	// only the webhook moves it.
	Initiate(ctx context.Context, actor, bookingID uuid.UUID) (string, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	urls    FrontendURLs
	logger  *slog.Logger
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, urls FrontendURLs, logger *slog.Logger) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, gateway: gateway, urls: urls, logger: logger}
}

func (uc *checkoutUseCaseImpl) Initiate(ctx context.Context, actor, bookingID uuid.UUID) (string, error) {
	reads := uc.uow.CommandReads()

	b, err := loadBooking(ctx, reads, bookingID)
	if err != nil {
		return "", err
	}
	if !b.IsClient(actor) {
		return "", ErrNotBookingsClient
	}
	if b.Status() != booking.StatusPending {
		return "", ErrBookingNotPayable
	}

	amountCents, err := money.ToMinorUnits(b.TotalPrice())
	if err != nil {
		return "", err
	}
	feeCents, err := money.ToMinorUnits(b.CommissionAmount())
	if err != nil {
		return "", err
	}

	ctr, err := reads.CenterByID(ctx, b.CenterID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", center.ErrNotFound
		}
		return "", err
	}

	req := CheckoutSessionRequest{
		BookingID:   b.ID(),
		ProductName: uc.productName(ctx, reads, b),
		AmountCents: amountCents,
		Currency:    money.NormalizeCurrency(b.Currency(), ctr.Currency()),
		SuccessURL:  uc.urls.BookingSuccess(b.ID()),
		CancelURL:   uc.urls.BookingCancelled(b.ID()),
	}
	if dest, ok := ctr.PayoutDestination(); ok {
		req.Destination = &dest
		req.ApplicationFeeCents = feeCents
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", err
	}

	uc.logger.InfoContext(ctx, "checkout session created",
		"booking_id", b.ID(),
		"session_id", session.ID,
		"destination_charge", req.Destination != nil)
	return session.URL, nil
}

// productName falls back to a generic label for ad-hoc bookings.
func (uc *checkoutUseCaseImpl) productName(ctx context.Context, reads shared.CommandReads, b *booking.Booking) string {
	if b.ServiceID() == nil {
		return defaultProductName
	}
	svc, err := reads.ServiceByID(ctx, *b.ServiceID())
	if err != nil || svc.Name == "" {
		return defaultProductName
	}
	return svc.Name
}
