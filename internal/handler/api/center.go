package api

import (
	"net/http"

	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgInvalidBlockedDateID = "Invalid blocked date ID"

// CenterHandler serves a center's calendar and catalogue.
type CenterHandler struct {
	schedule        queries.ScheduleQueries
	scheduleCmds    commands.ScheduleCommands
	services        queries.ServiceQueries
	serviceCommands commands.ServiceCommands
}

func NewCenterHandler(
	schedule queries.ScheduleQueries,
	scheduleCmds commands.ScheduleCommands,
	services queries.ServiceQueries,
	serviceCommands commands.ServiceCommands,
) *CenterHandler {
	return &CenterHandler{
		schedule:        schedule,
		scheduleCmds:    scheduleCmds,
		services:        services,
		serviceCommands: serviceCommands,
	}
}

// @Summary List blocked dates
// @Tags centers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Success 200 {object} resdto.Data[[]queries.BlockedDateView]
// @Failure 403 {object} httperr.Response
// @Router /centers/{id}/blocked-dates [get]
func (h *CenterHandler) ListBlockedDates(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}

	rows, err := h.schedule.BlockedDates(c.Request.Context(), userID, centerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []*queries.BlockedDateView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(rows))
}

// @Summary Block a date
// @Description Closes the center for a whole day. start_date is accepted as an alias of blocked_date.
// @Tags centers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param request body reqdto.BlockDateRequest true "Day to block"
// @Success 201 {object} resdto.Data[resdto.CreatedResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /centers/{id}/blocked-dates [post]
func (h *CenterHandler) BlockDate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	var req reqdto.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.scheduleCmds.BlockDate(c.Request.Context(), userID, centerID, req.Date(), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Wrap(resdto.CreatedResponse{ID: id}))
}

// @Summary Unblock a date
// @Tags centers
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param date_id path string true "Blocked date ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /centers/{id}/blocked-dates/{date_id} [delete]
func (h *CenterHandler) UnblockDate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	dateID, ok := parseIDParam(c, "date_id", msgInvalidBlockedDateID)
	if !ok {
		return
	}

	if err := h.scheduleCmds.UnblockDate(c.Request.Context(), userID, centerID, dateID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a center's services
// @Tags centers
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} resdto.Data[[]queries.ServiceView]
// @Failure 404 {object} httperr.Response
// @Router /centers/{id}/services [get]
func (h *CenterHandler) ListServices(c *gin.Context) {
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}

	rows, err := h.services.ListByCenter(c.Request.Context(), centerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []*queries.ServiceView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(rows))
}

// @Summary Create a service
// @Tags centers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Center ID"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.Data[queries.ServiceView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /centers/{id}/services [post]
func (h *CenterHandler) CreateService(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	centerID, ok := parseIDParam(c, "id", msgInvalidCenterID)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	svc, err := h.serviceCommands.Create(c.Request.Context(), userID, centerID, req.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Wrap(resdto.FromService(svc)))
}
