package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceCommands interface {
	Create(ctx context.Context, actor, centerID uuid.UUID, params center.NewServiceParams) (*center.Service, error)
}

type serviceUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewServiceCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *serviceUseCaseImpl) Create(ctx context.Context, actor, centerID uuid.UUID, params center.NewServiceParams) (*center.Service, error) {
	reads := uc.uow.CommandReads()
	if err := requireCenterMember(ctx, reads, actor, centerID); err != nil {
		return nil, err
	}

	ctr, err := reads.CenterByID(ctx, centerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, center.ErrNotFound
		}
		return nil, err
	}

	svc, err := ctr.NewService(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, tx.DB(), svc)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "service created", "center_id", centerID, "service_id", svc.ID())
	return svc, nil
}
