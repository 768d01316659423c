package booking

import (
	"time"

	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceInactive        = errs.Sentinel("service is not available for booking", errs.ErrValidation)
	ErrServiceCenterMismatch  = errs.Sentinel("service does not belong to this center", errs.ErrValidation)
	ErrInvalidParticipants    = errs.Sentinel("participants must be at least 1", errs.ErrValidation)
	ErrParticipantsOutOfRange = errs.Sentinel("participants outside the service's allowed range", errs.ErrValidation)
	ErrDateInPast             = errs.Sentinel("booking date cannot be in the past", errs.ErrValidation)
	ErrNegativePrice          = errs.Sentinel("price cannot be negative", errs.ErrValidation)
	ErrDateBlocked            = errs.Sentinel("date is not available", errs.ErrValidation)
	ErrSlotTaken              = errs.Sentinel("time slot is already booked", errs.ErrConflict)
	ErrNotFound               = errs.Sentinel("booking not found", errs.ErrNotFound)

	ErrCannotCancel   = errs.Sentinel("booking is already cancelled or completed", errs.ErrValidation)
	ErrCannotConfirm  = errs.Sentinel("only pending bookings can be confirmed", errs.ErrValidation)
	ErrCannotComplete = errs.Sentinel("only confirmed bookings can be completed", errs.ErrValidation)

	// ErrStatusChanged means the guarded update matched no row: another actor
	// moved the booking between our read and our write.
	ErrStatusChanged = errs.Sentinel("booking status changed concurrently", errs.ErrConflict)
)

const (
	DefaultMinParticipants = 1
	DefaultMaxCapacity     = 20
)

// ServiceSpec is the bookable offer as seen by the state machine.
type ServiceSpec struct {
	ID              uuid.UUID
	CenterID        uuid.UUID
	Name            string
	Active          bool
	UnitPrice       decimal.Decimal
	Currency        string
	MinParticipants int
	MaxCapacity     int
}

type Services struct {
	Clock clock.Clock
}

type NewBookingParams struct {
	ClientID       uuid.UUID
	CenterID       uuid.UUID
	Date           Date
	Slot           TimeSlot
	Participants   int
	Note           Note
	CommissionRate decimal.Decimal
}

type Booking struct {
	id               uuid.UUID
	clientID         uuid.UUID
	centerID         uuid.UUID
	serviceID        *uuid.UUID
	date             Date
	slot             TimeSlot
	participants     int
	unitPrice        decimal.Decimal
	totalPrice       decimal.Decimal
	commissionRate   decimal.Decimal
	commissionAmount decimal.Decimal
	currency         string
	note             Note
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
	confirmedAt      *time.Time
	cancelledAt      *time.Time
}

// NewBooking validates a creation request against the service and prices it
// with the commission rate snapshot. Availability is enforced by the store.
func NewBooking(services *Services, svc ServiceSpec, p NewBookingParams) (*Booking, error) {
	if svc.CenterID != p.CenterID {
		return nil, ErrServiceCenterMismatch
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}
	if p.Participants < 1 {
		return nil, ErrInvalidParticipants
	}

	minP, maxP := svc.MinParticipants, svc.MaxCapacity
	if minP < 1 {
		minP = DefaultMinParticipants
	}
	if maxP < 1 {
		maxP = DefaultMaxCapacity
	}
	if p.Participants < minP || p.Participants > maxP {
		return nil, errs.Wrapf(ErrParticipantsOutOfRange, "allowed %d-%d", minP, maxP)
	}

	now := services.Clock.Now()
	if p.Date.Before(DateOf(now)) {
		return nil, ErrDateInPast
	}
	if svc.UnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	total := svc.UnitPrice.Mul(decimal.NewFromInt(int64(p.Participants)))
	serviceID := svc.ID

	return &Booking{
		id:               uuid.New(),
		clientID:         p.ClientID,
		centerID:         p.CenterID,
		serviceID:        &serviceID,
		date:             p.Date,
		slot:             p.Slot,
		participants:     p.Participants,
		unitPrice:        svc.UnitPrice,
		totalPrice:       total,
		commissionRate:   p.CommissionRate,
		commissionAmount: ComputeCommission(total, p.CommissionRate),
		currency:         svc.Currency,
		note:             p.Note,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	CenterID         uuid.UUID
	ServiceID        *uuid.UUID
	Date             Date
	Slot             TimeSlot
	Participants     int
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	Currency         string
	Note             Note
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ConfirmedAt      *time.Time
	CancelledAt      *time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:               p.ID,
		clientID:         p.ClientID,
		centerID:         p.CenterID,
		serviceID:        p.ServiceID,
		date:             p.Date,
		slot:             p.Slot,
		participants:     p.Participants,
		unitPrice:        p.UnitPrice,
		totalPrice:       p.TotalPrice,
		commissionRate:   p.CommissionRate,
		commissionAmount: p.CommissionAmount,
		currency:         p.Currency,
		note:             p.Note,
		status:           p.Status,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		confirmedAt:      p.ConfirmedAt,
		cancelledAt:      p.CancelledAt,
	}
}

// Transition checks lead the guarded update; the store has the final say.

func (b *Booking) CheckCancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrCannotCancel
	}
	return nil
}

func (b *Booking) CheckConfirm() error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return ErrCannotConfirm
	}
	return nil
}

func (b *Booking) CheckComplete() error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrCannotComplete
	}
	return nil
}

func (b *Booking) IsClient(userID uuid.UUID) bool {
	return b.clientID == userID
}

// VendorShare is what the center keeps once the platform commission is taken.
func (b *Booking) VendorShare() decimal.Decimal {
	return b.totalPrice.Sub(b.commissionAmount)
}

func (b *Booking) ID() uuid.UUID                     { return b.id }
func (b *Booking) ClientID() uuid.UUID               { return b.clientID }
func (b *Booking) CenterID() uuid.UUID               { return b.centerID }
func (b *Booking) ServiceID() *uuid.UUID             { return b.serviceID }
func (b *Booking) Date() Date                        { return b.date }
func (b *Booking) Slot() TimeSlot                    { return b.slot }
func (b *Booking) Participants() int                 { return b.participants }
func (b *Booking) UnitPrice() decimal.Decimal        { return b.unitPrice }
func (b *Booking) TotalPrice() decimal.Decimal       { return b.totalPrice }
func (b *Booking) CommissionRate() decimal.Decimal   { return b.commissionRate }
func (b *Booking) CommissionAmount() decimal.Decimal { return b.commissionAmount }
func (b *Booking) Currency() string                  { return b.currency }
func (b *Booking) Note() Note                        { return b.note }
func (b *Booking) Status() Status                    { return b.status }
func (b *Booking) CreatedAt() time.Time              { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time              { return b.updatedAt }
func (b *Booking) ConfirmedAt() *time.Time           { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time           { return b.cancelledAt }
