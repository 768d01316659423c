package response

import (
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromService(s *center.Service) queries.ServiceView {
	return queries.ServiceView{
		ID:              s.ID(),
		CenterID:        s.CenterID(),
		Name:            s.Name(),
		Price:           s.Price(),
		Currency:        s.Currency(),
		MinParticipants: s.MinParticipants(),
		MaxCapacity:     s.MaxCapacity(),
	}
}
