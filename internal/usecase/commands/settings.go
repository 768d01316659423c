package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSettingNotFound       = errs.Sentinel("configuration key not found", errs.ErrNotFound)
	ErrInvalidCommissionRate = errs.Sentinel("commission_rate must be a decimal between 0 and 100 with at most 2 decimal places", errs.ErrValidation)
)

type SettingsCommands interface {
	Update(ctx context.Context, actor uuid.UUID, key, value string) error
}

type settingsUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSettingsCommands(uow shared.UnitOfWork, logger *slog.Logger) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, logger: logger}
}

// Update never touches existing bookings; they keep their rate snapshot.
func (uc *settingsUseCaseImpl) Update(ctx context.Context, actor uuid.UUID, key, value string) error {
	if key == booking.CommissionRateKey {
		rate, err := booking.ParseCommissionRate(value)
		if err != nil {
			return ErrInvalidCommissionRate
		}
		value = rate.String()
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PlatformConfig().Update(ctx, tx.DB(), key, value, actor)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			msg := fmt.Sprintf("Configuration key '%s' not found", key)
			return errs.Mark(errs.Sentinel(msg, errs.ErrNotFound), ErrSettingNotFound)
		}
		return err
	}

	uc.logger.InfoContext(ctx, "platform setting updated", "key", key, "updated_by", actor)
	return nil
}
