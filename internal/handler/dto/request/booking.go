package request

import (
	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID    uuid.UUID `json:"service_id" binding:"required"`
	CenterID     uuid.UUID `json:"center_id" binding:"required"`
	BookingDate  string    `json:"booking_date" binding:"required,booking_date"`
	TimeSlot     string    `json:"time_slot" binding:"required,time_slot"`
	Participants int       `json:"participants" binding:"required,min=1"`
	ClientNote   *string   `json:"client_note,omitempty"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := booking.ParseDate(r.BookingDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	slot, err := booking.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		ServiceID:    r.ServiceID,
		CenterID:     r.CenterID,
		Date:         date,
		Slot:         slot,
		Participants: r.Participants,
		Note:         r.ClientNote,
	}, nil
}

type ListBookingsQuery struct {
	Status *string `form:"status"`
	Limit  int     `form:"limit" binding:"omitempty,min=0"`
}

type AvailabilityQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"required,booking_date"`
	TimeSlot  string `form:"time_slot" binding:"omitempty,time_slot"`
}
