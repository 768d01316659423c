package converter

import (
	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ServiceToCreateParams(s *center.Service) query.CreateServiceParams {
	minP := pgtype.Int4{}
	if p := s.MinParticipants(); p != nil {
		minP = pgtype.Int4{Int32: int32(*p), Valid: true} // #nosec G115 -- bounded by max capacity
	}
	return query.CreateServiceParams{
		ID:              s.ID(),
		CenterID:        s.CenterID(),
		Name:            s.Name(),
		Price:           s.Price(),
		Currency:        s.Currency(),
		MinParticipants: minP,
		MaxCapacity:     int32(s.MaxCapacity()), // #nosec G115 -- validated positive int
		IsActive:        s.Active(),
		CreatedAt:       s.CreatedAt(),
	}
}

func BlockedDateToCreateParams(b booking.BlockedDate) query.CreateBlockedDateParams {
	return query.CreateBlockedDateParams{
		CenterID:    b.CenterID,
		BlockedDate: DateToPgtype(b.Date),
		Reason:      pgconv.StringPtrToPgtype(b.Reason),
	}
}
