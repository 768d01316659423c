package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentReadQueries interface {
	ListCommissionsByCenter(ctx context.Context, db query.DBTX, arg query.CenterPageParams) ([]query.CommissionRow, error)
	ListTransactionsByCenter(ctx context.Context, db query.DBTX, arg query.CenterPageParams) ([]query.Transaction, error)
	GetCenterRevenue(ctx context.Context, db query.DBTX, centerID uuid.UUID) (query.CenterRevenueRow, error)
	GetCenterAvailableBalance(ctx context.Context, db query.DBTX, centerID uuid.UUID) (decimal.Decimal, error)
	TransactionExistsByPaymentIntent(ctx context.Context, db query.DBTX, paymentIntentID string) (bool, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      query.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db query.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListCommissions(ctx context.Context, centerID uuid.UUID, page queries.Page) ([]*queries.CommissionView, error) {
	rows, err := r.queries.ListCommissionsByCenter(ctx, r.db, pageParams(centerID, page))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commissions", err)
	}

	items := make([]*queries.CommissionView, 0, len(rows))
	for i := range rows {
		v := &queries.CommissionView{}
		if err := copyView(v, &rows[i]); err != nil {
			return nil, infra.WrapRepoErr("failed to map commission", err)
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *PaymentReadStore) ListPayments(ctx context.Context, centerID uuid.UUID, page queries.Page) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListTransactionsByCenter(ctx, r.db, pageParams(centerID, page))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	items := make([]*queries.PaymentView, 0, len(rows))
	for i := range rows {
		v := &queries.PaymentView{}
		if err := copyView(v, &rows[i]); err != nil {
			return nil, infra.WrapRepoErr("failed to map payment", err)
		}
		items = append(items, v)
	}
	return items, nil
}

// Revenue reads the aggregate and the payout balance in two statements;
// callers needing a single snapshot run it inside WithinReadOnly.
func (r *PaymentReadStore) Revenue(ctx context.Context, centerID uuid.UUID) (*queries.RevenueView, error) {
	row, err := r.queries.GetCenterRevenue(ctx, r.db, centerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute revenue", err)
	}
	balance, err := r.queries.GetCenterAvailableBalance(ctx, r.db, centerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute available balance", err)
	}

	v := &queries.RevenueView{CenterID: centerID, AvailableBalance: balance}
	if err := copyView(v, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map revenue", err)
	}
	return v, nil
}

func (r *PaymentReadStore) TransactionExists(ctx context.Context, paymentIntentID string) (bool, error) {
	exists, err := r.queries.TransactionExistsByPaymentIntent(ctx, r.db, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check transaction", err)
	}
	return exists, nil
}

func pageParams(centerID uuid.UUID, page queries.Page) query.CenterPageParams {
	return query.CenterPageParams{
		CenterID: centerID,
		Limit:    int32(page.Limit),  // #nosec G115 -- clamped by queries.Page
		Offset:   int32(page.Offset), // #nosec G115 -- clamped by queries.Page
	}
}
