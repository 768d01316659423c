package queries

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/coupon"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"

	"github.com/google/uuid"
)

type CouponQueries interface {
	Validate(ctx context.Context, code string, centerID *uuid.UUID) (*CouponValidationView, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clock}
}

// Validate never reserves a use; it reports whether the code could be applied now.
func (q *couponQueriesImpl) Validate(ctx context.Context, code string, centerID *uuid.UUID) (*CouponValidationView, error) {
	c, err := coupon.NewCode(code)
	if err != nil {
		return nil, err
	}

	found, err := q.store.FindByCode(ctx, c)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidationView{Valid: false, Message: coupon.MsgNotFound}, nil
		}
		return nil, err
	}

	id := found.ID()
	verdict := found.Check(q.clock.Now(), centerID)
	view := &CouponValidationView{Valid: verdict.Valid, CouponID: &id, Message: verdict.Message}
	if verdict.Valid {
		kind := string(found.Discount().Type())
		value := found.Discount().Value()
		view.DiscountType = &kind
		view.DiscountValue = &value
	}
	return view, nil
}
