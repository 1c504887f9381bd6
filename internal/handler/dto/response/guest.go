package response

import (
	"hotel-booking/internal/domain/guest"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func FromGuest(g guest.Guest) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, &g)
	return &resp
}
