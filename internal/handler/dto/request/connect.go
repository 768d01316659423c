package request

import "github.com/google/uuid"

type ConnectRequest struct {
	CenterID uuid.UUID `json:"center_id" binding:"required"`
}

type UpdateStripeConfigRequest struct {
	CenterID uuid.UUID `json:"center_id" binding:"required"`
	Currency string    `json:"currency" binding:"required,currency"`
}
