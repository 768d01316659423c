package api

import (
	"io"
	"net/http"

	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	// Stripe caps event payloads well below this.
	maxWebhookBody = 1 << 20
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Verifies the signature, then reconciles payment state idempotently.
// @Tags stripe
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} httperr.Response
// @Router /stripe/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		respondInvalidParam(c, err, "Invalid webhook payload")
		return
	}

	if err := h.cmds.Handle(c.Request.Context(), payload, c.GetHeader(signatureHeader)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
}
