package api

import (
	"net/http"
	"strings"

	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	q queries.CouponQueries
}

func NewCouponHandler(q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{q: q}
}

// @Summary Validate coupon code
// @Tags coupons
// @Produce json
// @Param code query string true "Coupon code"
// @Param center_id query string false "Center the coupon would apply to"
// @Success 200 {object} resdto.Data[queries.CouponValidationView]
// @Failure 400 {object} httperr.Response
// @Router /coupons/validate [get]
func (h *CouponHandler) Validate(c *gin.Context) {
	var q reqdto.ValidateCouponQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	if strings.TrimSpace(q.Code) == "" {
		respondInvalidParam(c, nil, "Coupon code is required")
		return
	}
	var centerID *uuid.UUID
	if q.CenterID != "" {
		id, err := uuid.Parse(q.CenterID)
		if err != nil {
			respondInvalidParam(c, err, msgInvalidCenterID)
			return
		}
		centerID = &id
	}

	view, err := h.q.Validate(c.Request.Context(), q.Code, centerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(view))
}
