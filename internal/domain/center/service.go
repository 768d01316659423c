package center

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxCapacity = 20

	maxServiceNameLength = 200
	// priceScale matches services.price NUMERIC(10,2).
	priceScale = 2
)

var maxServicePrice = decimal.RequireFromString("99999999.99")

var (
	ErrServiceNameRequired    = errs.Sentinel("service name is required", errs.ErrValidation)
	ErrServiceNameTooLong     = errs.Sentinel("service name is too long", errs.ErrValidation)
	ErrInvalidServicePrice    = errs.Sentinel("price must be between 0 and 99999999.99 with at most 2 decimal places", errs.ErrValidation)
	ErrInvalidMaxCapacity     = errs.Sentinel("max_capacity must be at least 1", errs.ErrValidation)
	ErrInvalidMinParticipants = errs.Sentinel("min_participants must be between 1 and max_capacity", errs.ErrValidation)
)

// Service is a bookable offer of a center.
type Service struct {
	id              uuid.UUID
	centerID        uuid.UUID
	name            string
	price           decimal.Decimal
	currency        string
	minParticipants *int
	maxCapacity     int
	active          bool
	createdAt       time.Time
}

type NewServiceParams struct {
	Name            string
	Price           decimal.Decimal
	Currency        string
	MinParticipants *int
	MaxCapacity     *int
}

// NewService creates an active service. A blank currency falls back to the
// center's currency and a missing capacity to DefaultMaxCapacity.
func (c *Center) NewService(p NewServiceParams, now time.Time) (*Service, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrServiceNameRequired
	}
	if utf8.RuneCountInString(name) > maxServiceNameLength {
		return nil, ErrServiceNameTooLong
	}

	if p.Price.IsNegative() || p.Price.GreaterThan(maxServicePrice) || !p.Price.Equal(p.Price.Round(priceScale)) {
		return nil, ErrInvalidServicePrice
	}

	currency := c.currency
	if strings.TrimSpace(p.Currency) != "" {
		code, err := ParseCurrency(p.Currency)
		if err != nil {
			return nil, err
		}
		currency = code
	}

	maxCapacity := DefaultMaxCapacity
	if p.MaxCapacity != nil {
		maxCapacity = *p.MaxCapacity
	}
	if maxCapacity < 1 {
		return nil, ErrInvalidMaxCapacity
	}
	if p.MinParticipants != nil && (*p.MinParticipants < 1 || *p.MinParticipants > maxCapacity) {
		return nil, ErrInvalidMinParticipants
	}

	return &Service{
		id:              uuid.New(),
		centerID:        c.id,
		name:            name,
		price:           p.Price,
		currency:        currency,
		minParticipants: p.MinParticipants,
		maxCapacity:     maxCapacity,
		active:          true,
		createdAt:       now,
	}, nil
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) CenterID() uuid.UUID    { return s.centerID }
func (s *Service) Name() string           { return s.name }
func (s *Service) Price() decimal.Decimal { return s.price }
func (s *Service) Currency() string       { return s.currency }
func (s *Service) MinParticipants() *int  { return s.minParticipants }
func (s *Service) MaxCapacity() int       { return s.maxCapacity }
func (s *Service) Active() bool           { return s.active }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
