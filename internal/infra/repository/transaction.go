package repository

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/transaction"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/infra/repository/converter"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db query.DBTX, arg query.CreateTransactionParams) error
	MarkTransactionRefunded(ctx context.Context, db query.DBTX, paymentIntentID string) (int64, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{queries: queries}
}

// Create reports DUPLICATE_KEY for a payment intent already recorded and
// FOREIGN_KEY_VIOLATED when the booking row is gone.
func (r *TransactionRepository) Create(ctx context.Context, tx query.DBTX, t *transaction.Transaction) error {
	if err := r.queries.CreateTransaction(ctx, tx, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) MarkRefunded(ctx context.Context, tx query.DBTX, paymentIntentID string) (bool, error) {
	affected, err := r.queries.MarkTransactionRefunded(ctx, tx, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark transaction refunded", err)
	}
	return affected > 0, nil
}
