package api

import (
	"net/http"

	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler routes are mounted behind RequireAuth and RequireAdmin.
type AdminHandler struct {
	bookings commands.BookingCommands
	settings commands.SettingsCommands
	q        queries.SettingsQueries
}

func NewAdminHandler(bookings commands.BookingCommands, settings commands.SettingsCommands, q queries.SettingsQueries) *AdminHandler {
	return &AdminHandler{bookings: bookings, settings: settings, q: q}
}

// @Summary List platform settings
// @Description Secret values are masked.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Data[[]queries.SettingView]
// @Failure 403 {object} httperr.Response
// @Router /admin/settings [get]
func (h *AdminHandler) ListSettings(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if views == nil {
		views = []*queries.SettingView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(views))
}

// @Summary Update platform setting
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body reqdto.UpdateSettingRequest true "New value"
// @Success 200 {object} resdto.SettingUpdated
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/settings/{key} [put]
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	key := c.Param("key")
	if err := h.settings.Update(c.Request.Context(), userID, key, *req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SettingUpdated{Message: "Setting updated", Key: key})
}

// @Summary Complete booking
// @Description Moves a confirmed booking to completed, releasing it to the payout balance.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.StatusChange
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id", msgInvalidBookingID)
	if !ok {
		return
	}
	if err := h.bookings.Complete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusChange{Message: "Booking completed", Status: "completed"})
}
