package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	Commissions(ctx context.Context, actor, centerID uuid.UUID, page Page) ([]*CommissionView, error)
	Payments(ctx context.Context, actor, centerID uuid.UUID, page Page) ([]*PaymentView, error)
	Revenue(ctx context.Context, actor, centerID uuid.UUID) (*RevenueView, error)
}

type PaymentReadStore interface {
	ListCommissions(ctx context.Context, centerID uuid.UUID, page Page) ([]*CommissionView, error)
	ListPayments(ctx context.Context, centerID uuid.UUID, page Page) ([]*PaymentView, error)
	Revenue(ctx context.Context, centerID uuid.UUID) (*RevenueView, error)
}

type paymentQueriesImpl struct {
	store  PaymentReadStore
	access AccessReadStore
}

func NewPaymentQueries(store PaymentReadStore, access AccessReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store, access: access}
}

func (q *paymentQueriesImpl) Commissions(ctx context.Context, actor, centerID uuid.UUID, page Page) ([]*CommissionView, error) {
	if err := q.requireMember(ctx, actor, centerID); err != nil {
		return nil, err
	}
	return q.store.ListCommissions(ctx, centerID, page.Normalize())
}

func (q *paymentQueriesImpl) Payments(ctx context.Context, actor, centerID uuid.UUID, page Page) ([]*PaymentView, error) {
	if err := q.requireMember(ctx, actor, centerID); err != nil {
		return nil, err
	}
	return q.store.ListPayments(ctx, centerID, page.Normalize())
}

func (q *paymentQueriesImpl) Revenue(ctx context.Context, actor, centerID uuid.UUID) (*RevenueView, error) {
	if err := q.requireMember(ctx, actor, centerID); err != nil {
		return nil, err
	}
	view, err := q.store.Revenue(ctx, centerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, center.ErrNotFound
		}
		return nil, err
	}
	view.NetRevenue = view.TotalRevenue.Sub(view.TotalCommission)
	return view, nil
}

func (q *paymentQueriesImpl) requireMember(ctx context.Context, actor, centerID uuid.UUID) error {
	m, err := q.access.Membership(ctx, centerID, actor)
	if err != nil {
		return err
	}
	return m.RequireMember()
}
