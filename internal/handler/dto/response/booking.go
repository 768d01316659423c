package response

import (
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Currency         string          `json:"currency"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{
		ID:               r.ID,
		Status:           r.Status.String(),
		TotalPrice:       r.TotalPrice,
		CommissionAmount: r.CommissionAmount,
		Currency:         r.Currency,
	}
}

type PayoutResponse struct {
	TransferID string          `json:"transfer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
}

func FromPayoutResult(r *commands.PayoutResult) PayoutResponse {
	return PayoutResponse{
		TransferID: r.TransferID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Status:     r.Status,
	}
}
