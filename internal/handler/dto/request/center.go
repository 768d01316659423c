package request

import (
	"github.com/Evidive-blue/evidive/internal/domain/center"

	"github.com/shopspring/decimal"
)

// BlockDateRequest accepts start_date as an alias of blocked_date.
type BlockDateRequest struct {
	BlockedDate string  `json:"blocked_date"`
	StartDate   string  `json:"start_date"`
	Reason      *string `json:"reason"`
}

func (r BlockDateRequest) Date() string {
	if r.BlockedDate != "" {
		return r.BlockedDate
	}
	return r.StartDate
}

type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	MinParticipants *int            `json:"min_participants"`
	MaxCapacity     *int            `json:"max_capacity"`
}

func (r CreateServiceRequest) ToParams() center.NewServiceParams {
	return center.NewServiceParams{
		Name:            r.Name,
		Price:           r.Price,
		Currency:        r.Currency,
		MinParticipants: r.MinParticipants,
		MaxCapacity:     r.MaxCapacity,
	}
}
