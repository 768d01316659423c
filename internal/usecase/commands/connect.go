package commands

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
)

type OnboardingResult struct {
	URL       string
	AccountID string
}

type ConnectCommands interface {
	StartOnboarding(ctx context.Context, actor, centerID uuid.UUID, email string) (*OnboardingResult, error)
	UpdateCurrency(ctx context.Context, actor, centerID uuid.UUID, currency string) (string, error)
}

type connectUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	urls    FrontendURLs
	logger  *slog.Logger
}

func NewConnectCommands(uow shared.UnitOfWork, gateway PaymentGateway, urls FrontendURLs, logger *slog.Logger) ConnectCommands {
	return &connectUseCaseImpl{uow: uow, gateway: gateway, urls: urls, logger: logger}
}

// StartOnboarding reuses the center's connected account when one exists.
func (uc *connectUseCaseImpl) StartOnboarding(ctx context.Context, actor, centerID uuid.UUID, email string) (*OnboardingResult, error) {
	ctr, err := uc.ownedCenter(ctx, actor, centerID)
	if err != nil {
		return nil, err
	}

	var accountID string
	if ctr.HasStripeAccount() {
		accountID = *ctr.StripeAccountID()
	} else {
		accountID, err = uc.gateway.CreateConnectedAccount(ctx, ConnectedAccountRequest{CenterID: centerID, Email: email})
		if err != nil {
			return nil, err
		}
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Centers().SetStripeAccount(ctx, tx.DB(), centerID, accountID)
		})
		if err != nil {
			uc.logger.ErrorContext(ctx, "connected account created but not persisted",
				"center_id", centerID,
				"account_id", accountID,
				"error", err.Error())
			return nil, err
		}
		uc.logger.InfoContext(ctx, "connected account created", "center_id", centerID, "account_id", accountID)
	}

	url, err := uc.gateway.CreateOnboardingLink(ctx, OnboardingLinkRequest{
		AccountID:  accountID,
		RefreshURL: uc.urls.StripeRefresh(),
		ReturnURL:  uc.urls.StripeReturn(),
	})
	if err != nil {
		return nil, err
	}
	return &OnboardingResult{URL: url, AccountID: accountID}, nil
}

func (uc *connectUseCaseImpl) UpdateCurrency(ctx context.Context, actor, centerID uuid.UUID, currency string) (string, error) {
	code, err := center.ParseCurrency(currency)
	if err != nil {
		return "", err
	}
	if _, err := uc.ownedCenter(ctx, actor, centerID); err != nil {
		return "", err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Centers().SetCurrency(ctx, tx.DB(), centerID, code)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", center.ErrNotFound
		}
		return "", err
	}
	return code, nil
}

func (uc *connectUseCaseImpl) ownedCenter(ctx context.Context, actor, centerID uuid.UUID) (*center.Center, error) {
	reads := uc.uow.CommandReads()
	m, err := reads.Membership(ctx, centerID, actor)
	if err != nil {
		return nil, err
	}
	if err := m.RequireOwner(); err != nil {
		return nil, err
	}

	ctr, err := reads.CenterByID(ctx, centerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, center.ErrNotFound
		}
		return nil, err
	}
	return ctr, nil
}
