package shared

import (
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceSnapshot is the write-side view of a bookable service.
type ServiceSnapshot struct {
	ID              uuid.UUID
	CenterID        uuid.UUID
	Name            string
	Active          bool
	Price           decimal.Decimal
	Currency        string
	MinParticipants *int
	MaxCapacity     int
}

func (s ServiceSnapshot) Spec() booking.ServiceSpec {
	minP := 0
	if s.MinParticipants != nil {
		minP = *s.MinParticipants
	}
	return booking.ServiceSpec{
		ID:              s.ID,
		CenterID:        s.CenterID,
		Name:            s.Name,
		Active:          s.Active,
		UnitPrice:       s.Price,
		Currency:        s.Currency,
		MinParticipants: minP,
		MaxCapacity:     s.MaxCapacity,
	}
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// IdempotencyRecord is a live Idempotency-Key claim. Result is set once the
// guarded request completed.
type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	Result      *IdempotentTransfer
	ExpiresAt   time.Time
}

type IdempotentTransfer struct {
	TransferID string
	Amount     decimal.Decimal
	Currency   string
}
