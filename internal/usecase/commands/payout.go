package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/money"
	"github.com/Evidive-blue/evidive/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransferStatusCreated = "created"

	payoutEndpoint = "POST /centers/{id}/payouts"
	idempotencyTTL = 24 * time.Hour
)

var (
	ErrIdempotencyInProgress = errs.Sentinel("a request with this Idempotency-Key is still in progress", errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Sentinel("Idempotency-Key was already used for a different request", errs.ErrConflict)
)

type PayoutResult struct {
	TransferID string
	Amount     decimal.Decimal
	Currency   string
	Status     string
	// Replayed is set when the result comes from an earlier request with the same key.
	Replayed bool
}

type PayoutCommands interface {
	Request(ctx context.Context, actor, centerID uuid.UUID, amount decimal.Decimal, idempotencyKey uuid.UUID) (*PayoutResult, error)
}

type payoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewPayoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, logger *slog.Logger) PayoutCommands {
	return &payoutUseCaseImpl{uow: uow, gateway: gateway, clock: clk, logger: logger}
}

// Request validates everything before the transfer; the transfer is the last
// step and is never retried here. The Idempotency-Key is claimed before any
// money moves and is forwarded to the provider, so a client retry with the
// same key replays the first result instead of paying twice.
func (uc *payoutUseCaseImpl) Request(ctx context.Context, actor, centerID uuid.UUID, amount decimal.Decimal, idempotencyKey uuid.UUID) (*PayoutResult, error) {
	reads := uc.uow.CommandReads()

	m, err := reads.Membership(ctx, centerID, actor)
	if err != nil {
		return nil, err
	}
	if err := m.RequireOwner(); err != nil {
		return nil, err
	}

	replay, err := uc.claim(ctx, actor, idempotencyKey, payoutRequestHash(centerID, amount))
	if err != nil {
		return nil, err
	}
	if replay != nil {
		uc.logger.InfoContext(ctx, "payout replayed",
			"center_id", centerID,
			"transfer_id", replay.TransferID,
			"idempotency_key", idempotencyKey)
		return replay, nil
	}

	result, err := uc.transfer(ctx, centerID, amount, idempotencyKey)
	if err != nil {
		uc.release(ctx, actor, idempotencyKey)
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor, shared.IdempotentTransfer{
			TransferID: result.TransferID,
			Amount:     result.Amount,
			Currency:   result.Currency,
		})
	})
	if err != nil {
		// The transfer exists; the key stays in processing until it expires.
		uc.logger.ErrorContext(ctx, "payout created but idempotency key not completed",
			"center_id", centerID,
			"transfer_id", result.TransferID,
			"idempotency_key", idempotencyKey,
			"error", err.Error())
	}
	return result, nil
}

// claim returns a non-nil result only for a completed earlier request.
func (uc *payoutUseCaseImpl) claim(ctx context.Context, actor, key uuid.UUID, requestHash string) (*PayoutResult, error) {
	var existing *shared.IdempotencyRecord
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, actor, payoutEndpoint, requestHash, uc.clock.Now().Add(idempotencyTTL))
		if err != nil || claimed {
			return err
		}
		existing, err = tx.Reads().IdempotencyRecord(ctx, key, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if existing.Endpoint != payoutEndpoint || existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.Result == nil {
			return nil, errs.New("completed idempotency key has no stored result")
		}
		return &PayoutResult{
			TransferID: existing.Result.TransferID,
			Amount:     existing.Result.Amount,
			Currency:   existing.Result.Currency,
			Status:     TransferStatusCreated,
			Replayed:   true,
		}, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *payoutUseCaseImpl) transfer(ctx context.Context, centerID uuid.UUID, amount decimal.Decimal, idempotencyKey uuid.UUID) (*PayoutResult, error) {
	reads := uc.uow.CommandReads()

	ctr, err := reads.CenterByID(ctx, centerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, center.ErrNotFound
		}
		return nil, err
	}

	available, err := reads.AvailableBalance(ctx, centerID)
	if err != nil {
		return nil, err
	}
	dest, err := ctr.ValidatePayout(amount, available)
	if err != nil {
		return nil, err
	}

	amountCents, err := money.ToMinorUnits(amount)
	if err != nil {
		return nil, err
	}

	currency := money.NormalizeCurrency(ctr.Currency())
	transfer, err := uc.gateway.CreateTransfer(ctx, TransferRequest{
		CenterID:       centerID,
		Destination:    dest,
		AmountCents:    amountCents,
		Currency:       currency,
		Description:    fmt.Sprintf("Payout for center %s", ctr.Name()),
		IdempotencyKey: idempotencyKey.String(),
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "payout transfer failed",
			"center_id", centerID,
			"amount", money.Format(amount),
			"error", err.Error())
		return nil, err
	}

	uc.logger.InfoContext(ctx, "payout transfer created",
		"center_id", centerID,
		"transfer_id", transfer.ID,
		"amount", money.Format(amount))

	return &PayoutResult{
		TransferID: transfer.ID,
		Amount:     amount,
		Currency:   currency,
		Status:     TransferStatusCreated,
	}, nil
}

// release frees the key after a failed attempt so the client can retry it.
func (uc *payoutUseCaseImpl) release(ctx context.Context, actor, key uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, actor)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to release idempotency key",
			"idempotency_key", key,
			"error", err.Error())
	}
}

func payoutRequestHash(centerID uuid.UUID, amount decimal.Decimal) string {
	sum := sha256.Sum256([]byte(centerID.String() + "|" + amount.StringFixed(2)))
	return hex.EncodeToString(sum[:])
}
