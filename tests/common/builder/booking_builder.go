//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ClientID        uuid.UUID
	CenterID        uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	Active          bool
	UnitPrice       decimal.Decimal
	Currency        string
	MinParticipants int
	MaxCapacity     int
	Date            string
	Slot            string
	Participants    int
	Note            *string
	CommissionRate  decimal.Decimal
	Status          booking.Status
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ClientID:        uuid.New(),
		CenterID:        uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Discovery Dive",
		Active:          true,
		UnitPrice:       decimal.RequireFromString("100.00"),
		Currency:        "EUR",
		MinParticipants: 1,
		MaxCapacity:     4,
		Date:            "2026-06-15",
		Slot:            "08:00",
		Participants:    2,
		CommissionRate:  decimal.NewFromInt(20),
		Status:          booking.StatusPending,
		Now:             time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildServiceSpec() booking.ServiceSpec {
	return booking.ServiceSpec{
		ID:              b.ServiceID,
		CenterID:        b.CenterID,
		Name:            b.ServiceName,
		Active:          b.Active,
		UnitPrice:       b.UnitPrice,
		Currency:        b.Currency,
		MinParticipants: b.MinParticipants,
		MaxCapacity:     b.MaxCapacity,
	}
}

func (b *BookingBuilder) BuildParams() (booking.NewBookingParams, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return booking.NewBookingParams{}, err
	}
	slot, err := booking.ParseTimeSlot(b.Slot)
	if err != nil {
		return booking.NewBookingParams{}, err
	}
	note, err := booking.NewNote(b.Note)
	if err != nil {
		return booking.NewBookingParams{}, err
	}
	return booking.NewBookingParams{
		ClientID:       b.ClientID,
		CenterID:       b.CenterID,
		Date:           date,
		Slot:           slot,
		Participants:   b.Participants,
		Note:           note,
		CommissionRate: b.CommissionRate,
	}, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	params, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	services := &booking.Services{Clock: clock.NewMockClock(b.Now)}
	return booking.NewBooking(services, b.BuildServiceSpec(), params)
}

// BuildReconstructed returns a stored booking in b.Status, bypassing creation checks.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	date, _ := booking.ParseDate(b.Date)
	slot, _ := booking.ParseTimeSlot(b.Slot)
	note, _ := booking.NewNote(b.Note)
	serviceID := b.ServiceID
	total := b.UnitPrice.Mul(decimal.NewFromInt(int64(b.Participants)))
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               uuid.New(),
		ClientID:         b.ClientID,
		CenterID:         b.CenterID,
		ServiceID:        &serviceID,
		Date:             date,
		Slot:             slot,
		Participants:     b.Participants,
		UnitPrice:        b.UnitPrice,
		TotalPrice:       total,
		CommissionRate:   b.CommissionRate,
		CommissionAmount: booking.ComputeCommission(total, b.CommissionRate),
		Currency:         b.Currency,
		Note:             note,
		Status:           b.Status,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	})
}

// Fluent builder methods
func (b *BookingBuilder) WithParticipants(n int) *BookingBuilder {
	b.Participants = n
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(slot string) *BookingBuilder {
	b.Slot = slot
	return b
}

func (b *BookingBuilder) WithUnitPrice(price string) *BookingBuilder {
	b.UnitPrice = decimal.RequireFromString(price)
	return b
}

func (b *BookingBuilder) WithCommissionRate(rate string) *BookingBuilder {
	b.CommissionRate = decimal.RequireFromString(rate)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = &note
	return b
}

func (b *BookingBuilder) AsInactiveService() *BookingBuilder {
	b.Active = false
	return b
}
