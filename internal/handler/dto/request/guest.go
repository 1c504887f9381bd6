package request

import (
	"hotel-booking/internal/domain/guest"

	"github.com/google/uuid"
)

// Field-level validation happens in the registration service, not here;
// the DTO only shapes the payload.
type RegisterGuestRequest struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func (r RegisterGuestRequest) ToDomain() guest.Guest {
	return guest.Guest{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
