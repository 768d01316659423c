package request

import (
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PageQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (q PageQuery) ToPage() queries.Page {
	return queries.Page{Limit: q.Limit, Offset: q.Offset}.Normalize()
}

// PayoutRequest accepts the amount as a JSON number or string.
type PayoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
