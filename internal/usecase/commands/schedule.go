package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

// ScheduleCommands manages the days a center is closed. Owners and staff may
// both edit the calendar.
type ScheduleCommands interface {
	BlockDate(ctx context.Context, actor, centerID uuid.UUID, rawDate string, reason *string) (uuid.UUID, error)
	UnblockDate(ctx context.Context, actor, centerID, id uuid.UUID) error
}

type scheduleUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewScheduleCommands(uow shared.UnitOfWork, logger *slog.Logger) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow, logger: logger}
}

func (uc *scheduleUseCaseImpl) BlockDate(ctx context.Context, actor, centerID uuid.UUID, rawDate string, reason *string) (uuid.UUID, error) {
	if err := requireCenterMember(ctx, uc.uow.CommandReads(), actor, centerID); err != nil {
		return uuid.Nil, err
	}

	blocked, err := booking.NewBlockedDate(centerID, rawDate, reason)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.BlockedDates().Create(ctx, tx.DB(), blocked)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, booking.ErrDateAlreadyBlocked
		}
		return uuid.Nil, err
	}

	uc.logger.InfoContext(ctx, "date blocked", "center_id", centerID, "date", blocked.Date.String(), "blocked_date_id", id)
	return id, nil
}

func (uc *scheduleUseCaseImpl) UnblockDate(ctx context.Context, actor, centerID, id uuid.UUID) error {
	if err := requireCenterMember(ctx, uc.uow.CommandReads(), actor, centerID); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BlockedDates().Delete(ctx, tx.DB(), centerID, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ErrBlockedDateNotFound
		}
		return err
	}

	uc.logger.InfoContext(ctx, "date unblocked", "center_id", centerID, "blocked_date_id", id)
	return nil
}

func requireCenterMember(ctx context.Context, reads shared.CommandReads, actor, centerID uuid.UUID) error {
	m, err := reads.Membership(ctx, centerID, actor)
	if err != nil {
		return err
	}
	return m.RequireMember()
}
