package coupon

import (
	"strings"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode              = errs.Sentinel("Coupon code is required", errs.ErrValidation)
	ErrUnknownDiscountType    = errs.Sentinel("unknown discount type", errs.ErrValidation)
	ErrInvalidDiscountAmount  = errs.Sentinel("discount amount cannot be negative", errs.ErrValidation)
	ErrInvalidDiscountPercent = errs.Sentinel("percentage discount must be between 0 and 100", errs.ErrValidation)
)

type Code string

// NewCode trims the code; lookups are exact-match on the stored code.
func NewCode(raw string) (Code, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", ErrEmptyCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountType(kind) {
	case DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if value.IsNegative() {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, errs.Wrapf(ErrUnknownDiscountType, "type %q", kind)
	}
	return Discount{kind: DiscountType(kind), value: value}, nil
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

// Apply never takes a price below zero.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	var off decimal.Decimal
	if d.kind == DiscountPercentage {
		off = price.Mul(d.value).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		off = decimal.Min(d.value, price)
	}
	result := price.Sub(off)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}
