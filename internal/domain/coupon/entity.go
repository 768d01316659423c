package coupon

import (
	"time"

	"github.com/google/uuid"
)

const (
	MsgNotFound    = "Coupon not found"
	MsgInactive    = "Coupon is no longer active"
	MsgUsageLimit  = "Coupon has reached its usage limit"
	MsgExpired     = "Coupon has expired"
	MsgWrongCenter = "Coupon is not valid for this center"
	MsgValid       = "Coupon is valid"
)

type Coupon struct {
	id        uuid.UUID
	code      Code
	centerID  *uuid.UUID
	discount  Discount
	maxUses   int
	usedCount int
	active    bool
	expiresAt *time.Time
}

type ReconstructParams struct {
	ID        uuid.UUID
	Code      Code
	CenterID  *uuid.UUID
	Discount  Discount
	MaxUses   int
	UsedCount int
	Active    bool
	ExpiresAt *time.Time
}

func Reconstruct(p ReconstructParams) *Coupon {
	return &Coupon{
		id:        p.ID,
		code:      p.Code,
		centerID:  p.CenterID,
		discount:  p.Discount,
		maxUses:   p.MaxUses,
		usedCount: p.UsedCount,
		active:    p.Active,
		expiresAt: p.ExpiresAt,
	}
}

// Verdict is the outcome of checking a coupon for use.
type Verdict struct {
	Valid   bool
	Message string
}

// Check runs the usage checks in order: active, usage limit, expiry, then
// center restriction when a center is given.
func (c *Coupon) Check(now time.Time, centerID *uuid.UUID) Verdict {
	switch {
	case !c.active:
		return Verdict{Message: MsgInactive}
	case c.usedCount >= c.maxUses:
		return Verdict{Message: MsgUsageLimit}
	case c.expiresAt != nil && c.expiresAt.Before(now):
		return Verdict{Message: MsgExpired}
	case centerID != nil && c.centerID != nil && *c.centerID != *centerID:
		return Verdict{Message: MsgWrongCenter}
	}
	return Verdict{Valid: true, Message: MsgValid}
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) CenterID() *uuid.UUID  { return c.centerID }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) MaxUses() int          { return c.maxUses }
func (c *Coupon) UsedCount() int        { return c.usedCount }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
