package api

import (
	"net/http"

	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidCenterID        = "Invalid center ID"
	msgIdempotencyKeyRequired = "Idempotency-Key header required"
	msgInvalidIdempotencyKey  = "Invalid Idempotency-Key, expected a UUID"
	headerIdempotencyKey      = "Idempotency-Key"
	headerIdempotentReplayed  = "Idempotent-Replayed"
)

type PaymentHandler struct {
	q       queries.PaymentQueries
	payouts commands.PayoutCommands
}

func NewPaymentHandler(q queries.PaymentQueries, payouts commands.PayoutCommands) *PaymentHandler {
	return &PaymentHandler{q: q, payouts: payouts}
}

// @Summary Center commissions
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.Data[[]queries.CommissionView]
// @Failure 403 {object} httperr.Response
// @Router /centers/{id}/commissions [get]
func (h *PaymentHandler) Commissions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.q.Commissions(c.Request.Context(), userID, centerID, page.ToPage())
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []*queries.CommissionView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(rows))
}

// @Summary Center payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.Data[[]queries.PaymentView]
// @Failure 403 {object} httperr.Response
// @Router /centers/{id}/payments [get]
func (h *PaymentHandler) Payments(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.q.Payments(c.Request.Context(), userID, centerID, page.ToPage())
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []*queries.PaymentView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(rows))
}

// @Summary Center revenue summary
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Success 200 {object} resdto.Data[queries.RevenueView]
// @Failure 403 {object} httperr.Response
// @Router /centers/{id}/revenue [get]
func (h *PaymentHandler) Revenue(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}

	view, err := h.q.Revenue(c.Request.Context(), userID, centerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(view))
}

// @Summary Request payout
// @Description Transfers part of the available balance to the center's connected account.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param Idempotency-Key header string true "Client-generated UUID; a retry with the same key replays the first result"
// @Param request body reqdto.PayoutRequest true "Payout amount"
// @Success 201 {object} resdto.Data[resdto.PayoutResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /centers/{id}/payouts [post]
func (h *PaymentHandler) RequestPayout(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	idempotencyKey, ok := requireIdempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payouts.Request(c.Request.Context(), userID, centerID, req.Amount, idempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Replayed {
		c.Header(headerIdempotentReplayed, "true")
	}
	c.JSON(http.StatusCreated, resdto.Wrap(resdto.FromPayoutResult(result)))
}

func requireIdempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		respondInvalidParam(c, nil, msgIdempotencyKeyRequired)
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		respondInvalidParam(c, err, msgInvalidIdempotencyKey)
		return uuid.Nil, false
	}
	return key, true
}
