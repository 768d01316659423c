package readstore

import (
	"context"

	"github.com/Evidive-blue/evidive/internal/domain/coupon"
	"github.com/Evidive-blue/evidive/internal/infra"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db query.DBTX, code string) (query.Coupon, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      query.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db query.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	discount, err := coupon.NewDiscount(row.DiscountType, row.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "stored coupon %s", row.ID)
	}

	return coupon.Reconstruct(coupon.ReconstructParams{
		ID:        row.ID,
		Code:      coupon.Code(row.Code),
		CenterID:  pgconv.UUIDPtrFromPgtype(row.CenterID),
		Discount:  discount,
		MaxUses:   int(row.MaxUses),
		UsedCount: int(row.UsedCount),
		Active:    row.IsActive,
		ExpiresAt: pgconv.TimePtrFromPgtype(row.ExpiresAt),
	}), nil
}
