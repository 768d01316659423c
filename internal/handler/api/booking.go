package api

import (
	"context"
	"net/http"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	reqdto "github.com/Evidive-blue/evidive/internal/handler/dto/request"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidBookingID = "Invalid booking ID"

type BookingHandler struct {
	cmds         commands.BookingCommands
	checkout     commands.CheckoutCommands
	q            queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	checkout commands.CheckoutCommands,
	q queries.BookingQueries,
	availability queries.AvailabilityQueries,
) *BookingHandler {
	return &BookingHandler{cmds: cmds, checkout: checkout, q: q, availability: availability}
}

// @Summary Create booking
// @Description Book a service slot. Price and commission are fixed at creation.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Data[resdto.CreateBookingResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/v1/bookings/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.Wrap(resdto.FromCreateBookingResult(result)))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Success 200 {object} resdto.Data[[]queries.BookingView]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), userID, q.Status, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if views == nil {
		views = []*queries.BookingView{}
	}
	c.JSON(http.StatusOK, resdto.Wrap(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Data[queries.BookingView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", msgInvalidBookingID)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(view))
}

// @Summary Cancel booking
// @Description Client or center member; only non-terminal bookings.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.StatusChange
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, booking.StatusCancelled, "Booking cancelled")
}

// @Summary Confirm booking
// @Description Center member only; pending bookings only.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.StatusChange
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm, booking.StatusConfirmed, "Booking confirmed")
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, actor, id uuid.UUID) error, to booking.Status, msg string) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", msgInvalidBookingID)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusChange{Message: msg, Status: to.String()})
}

// @Summary Start checkout
// @Description Creates a hosted checkout session for a pending booking.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Data[resdto.CheckoutResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", msgInvalidBookingID)
	if !ok {
		return
	}

	url, err := h.checkout.Initiate(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.CheckoutResponse{CheckoutURL: url}))
}

// @Summary Service availability
// @Description Without time_slot returns the day summary, with it a single slot verdict.
// @Tags bookings
// @Produce json
// @Param service_id query string true "Service ID"
// @Param date query string true "YYYY-MM-DD"
// @Param time_slot query string false "HH:MM"
// @Success 200 {object} resdto.Data[queries.DayAvailabilityView]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		respondInvalidParam(c, err, "Invalid service ID")
		return
	}
	date, err := booking.ParseDate(q.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	if q.TimeSlot != "" {
		slot, err := booking.ParseTimeSlot(q.TimeSlot)
		if err != nil {
			respondError(c, err)
			return
		}
		available, err := h.availability.Slot(c.Request.Context(), serviceID, date, slot)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.Wrap(resdto.SlotAvailabilityResponse{Available: available}))
		return
	}

	day, err := h.availability.Day(c.Request.Context(), serviceID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(day))
}
