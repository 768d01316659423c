package api

import (
	"net/http"

	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/handler/middleware"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConnectHandler struct {
	cmds commands.ConnectCommands
	q    queries.ConnectQueries
}

func NewConnectHandler(cmds commands.ConnectCommands, q queries.ConnectQueries) *ConnectHandler {
	return &ConnectHandler{cmds: cmds, q: q}
}

// @Summary Start Stripe Connect onboarding
// @Tags stripe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConnectRequest true "Center to onboard"
// @Success 200 {object} resdto.Data[resdto.OnboardingResponse]
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /stripe/connect [post]
func (h *ConnectHandler) Onboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cmds.StartOnboarding(c.Request.Context(), userID, req.CenterID, middleware.GetUserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.OnboardingResponse{URL: result.URL, AccountID: result.AccountID}))
}

// @Summary Stripe config of owned centers
// @Tags stripe
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Data[[]queries.StripeConfigView]
// @Router /stripe/config [get]
func (h *ConnectHandler) GetConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	views, err := h.q.OwnedCenters(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if views == nil {
		views = []*queries.StripeConfigView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(views))
}

// @Summary Update center currency
// @Tags stripe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateStripeConfigRequest true "Currency update"
// @Success 200 {object} resdto.Data[resdto.CurrencyResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /stripe/config [patch]
func (h *ConnectHandler) UpdateConfig(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStripeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	currency, err := h.cmds.UpdateCurrency(c.Request.Context(), userID, req.CenterID, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.CurrencyResponse{CenterID: req.CenterID.String(), Currency: currency}))
}
