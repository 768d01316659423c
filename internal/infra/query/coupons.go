package query

import "context"

const getCouponByCode = `
SELECT id, code, center_id, discount_type, discount_value, max_uses, used_count, is_active, expires_at
FROM coupons
WHERE code = $1`

func (q *Queries) GetCouponByCode(ctx context.Context, db DBTX, code string) (Coupon, error) {
	var c Coupon
	err := db.QueryRow(ctx, getCouponByCode, code).Scan(
		&c.ID, &c.Code, &c.CenterID, &c.DiscountType, &c.DiscountValue, &c.MaxUses, &c.UsedCount, &c.IsActive, &c.ExpiresAt,
	)
	return c, err
}
