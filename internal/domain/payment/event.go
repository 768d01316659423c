package payment

import "github.com/google/uuid"

// Event is the closed set of gateway notifications the reconciler acts on.
// Anything else decodes to Ignored.
type Event interface {
	isEvent()
}

type CheckoutCompleted struct {
	EventID          string
	BookingRef       string
	PaymentIntentID  string
	AmountTotalCents int64
	Currency         string
}

type PaymentSucceeded struct {
	EventID         string
	PaymentIntentID string
	BookingRef      string
}

type ChargeRefunded struct {
	EventID         string
	PaymentIntentID string
}

type AccountUpdated struct {
	EventID        string
	AccountID      string
	ChargesEnabled bool
}

type Ignored struct {
	EventID string
	Type    string
}

func (CheckoutCompleted) isEvent() {}
func (PaymentSucceeded) isEvent()  {}
func (ChargeRefunded) isEvent()    {}
func (AccountUpdated) isEvent()    {}
func (Ignored) isEvent()           {}

// BookingID parses the correlation metadata; ok is false for foreign sessions.
func BookingID(ref string) (uuid.UUID, bool) {
	if ref == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(ref)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

const MetadataBookingID = "booking_id"
