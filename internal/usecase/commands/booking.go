package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound   = errs.Sentinel("service not found", errs.ErrNotFound)
	ErrBookingForbidden  = errs.Sentinel("you do not have access to this booking", errs.ErrForbidden)
	ErrNotBookingsClient = errs.Sentinel("only the booking's client can pay for it", errs.ErrForbidden)
)

type CreateBookingInput struct {
	ServiceID    uuid.UUID
	CenterID     uuid.UUID
	Date         booking.Date
	Slot         booking.TimeSlot
	Participants int
	Note         *string
}

type CreateBookingResult struct {
	ID               uuid.UUID
	Status           booking.Status
	TotalPrice       decimal.Decimal
	CommissionAmount decimal.Decimal
	Currency         string
}

type BookingCommands interface {
	Create(ctx context.Context, clientID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, actor, id uuid.UUID) error
	Confirm(ctx context.Context, actor, id uuid.UUID) error
	// Complete is an administrative action; callers gate it on the admin role.
	Complete(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, services: services, logger: logger}
}

// Create runs the cheap availability reads first for a friendly error; the
// partial unique index on the slot decides races.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, clientID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	note, err := booking.NewNote(in.Note)
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	svc, err := reads.ServiceByID(ctx, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	rate, err := uc.commissionRate(ctx, reads)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(uc.services, svc.Spec(), booking.NewBookingParams{
		ClientID:       clientID,
		CenterID:       in.CenterID,
		Date:           in.Date,
		Slot:           in.Slot,
		Participants:   in.Participants,
		Note:           note,
		CommissionRate: rate,
	})
	if err != nil {
		return nil, err
	}

	blocked, err := reads.IsDateBlocked(ctx, b.CenterID(), b.Date())
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, booking.ErrDateBlocked
	}
	taken, err := reads.IsSlotTaken(ctx, svc.ID, b.Date(), b.Slot())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, booking.ErrSlotTaken
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, booking.ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking created",
		"booking_id", b.ID(),
		"service_id", svc.ID,
		"date", b.Date().String(),
		"slot", b.Slot().String())

	return &CreateBookingResult{
		ID:               b.ID(),
		Status:           b.Status(),
		TotalPrice:       b.TotalPrice(),
		CommissionAmount: b.CommissionAmount(),
		Currency:         b.Currency(),
	}, nil
}

// commissionRate snapshots the platform rate; a malformed setting falls back
// to the default and is logged as an error.
func (uc *bookingUseCaseImpl) commissionRate(ctx context.Context, reads shared.CommandReads) (decimal.Decimal, error) {
	stored, err := reads.PlatformSetting(ctx, booking.CommissionRateKey)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := booking.ResolveCommissionRate(stored)
	if err != nil {
		uc.logger.ErrorContext(ctx, "malformed commission rate setting, using default",
			"default", rate.String(),
			"error", err.Error())
	}
	return rate, nil
}

// Cancel is open to the client and to members of the booking's center.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}
		if !b.IsClient(actor) {
			m, err := tx.Reads().Membership(ctx, b.CenterID(), actor)
			if err != nil {
				return err
			}
			if m.RequireMember() != nil {
				return ErrBookingForbidden
			}
		}
		if err := b.CheckCancel(); err != nil {
			return err
		}
		return transition(ctx, tx, id, booking.StatusCancelled)
	})
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}
		m, err := tx.Reads().Membership(ctx, b.CenterID(), actor)
		if err != nil {
			return err
		}
		if err := m.RequireMember(); err != nil {
			return err
		}
		if err := b.CheckConfirm(); err != nil {
			return err
		}
		return transition(ctx, tx, id, booking.StatusConfirmed)
	})
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}
		if err := b.CheckComplete(); err != nil {
			return err
		}
		return transition(ctx, tx, id, booking.StatusCompleted)
	})
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// transition turns a guard miss into a conflict.
func transition(ctx context.Context, tx shared.Tx, id uuid.UUID, to booking.Status) error {
	moved, err := tx.Bookings().Transition(ctx, tx.DB(), id, to)
	if err != nil {
		return err
	}
	if !moved {
		return booking.ErrStatusChanged
	}
	return nil
}
