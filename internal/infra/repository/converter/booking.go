package converter

import (
	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/transaction"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:               b.ID(),
		ClientID:         b.ClientID(),
		CenterID:         b.CenterID(),
		ServiceID:        pgconv.UUIDPtrToPgtype(b.ServiceID()),
		BookingDate:      pgconv.DateToPgtype(b.Date().Time()),
		TimeSlot:         b.Slot().String(),
		Participants:     int32(b.Participants()), // #nosec G115 -- bounded by max capacity
		UnitPrice:        b.UnitPrice(),
		TotalPrice:       b.TotalPrice(),
		CommissionRate:   b.CommissionRate(),
		CommissionAmount: b.CommissionAmount(),
		Currency:         b.Currency(),
		ClientNote:       pgconv.StringPtrToPgtype(b.Note().Ptr()),
		Status:           b.Status().String(),
		CreatedAt:        b.CreatedAt(),
	}
}

// BookingFromRow decodes status, date and slot at the store boundary.
func BookingFromRow(row query.Booking) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking status")
	}
	slot, err := booking.ParseTimeSlot(row.TimeSlot)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking slot")
	}
	note, err := booking.NewNote(pgconv.StringPtrFromPgtype(row.ClientNote))
	if err != nil {
		return nil, errs.Wrap(err, "stored booking note")
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               row.ID,
		ClientID:         row.ClientID,
		CenterID:         row.CenterID,
		ServiceID:        pgconv.UUIDPtrFromPgtype(row.ServiceID),
		Date:             booking.DateOf(row.BookingDate),
		Slot:             slot,
		Participants:     int(row.Participants),
		UnitPrice:        row.UnitPrice,
		TotalPrice:       row.TotalPrice,
		CommissionRate:   row.CommissionRate,
		CommissionAmount: row.CommissionAmount,
		Currency:         row.Currency,
		Note:             note,
		Status:           status,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		ConfirmedAt:      pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
	}), nil
}

func TransactionToCreateParams(t *transaction.Transaction) query.CreateTransactionParams {
	return query.CreateTransactionParams{
		ID:                    t.ID(),
		BookingID:             t.BookingID(),
		StripePaymentIntentID: t.PaymentIntentID(),
		Amount:                t.Amount(),
		PlatformFee:           t.PlatformFee(),
		VendorAmount:          t.VendorAmount(),
		Currency:              t.Currency(),
		Status:                string(t.Status()),
		CreatedAt:             t.CreatedAt(),
	}
}

func DateToPgtype(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}
