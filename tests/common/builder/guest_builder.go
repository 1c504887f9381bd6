//go:build unit

package builder

import (
	"hotel-booking/internal/domain/guest"
	reqdto "hotel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:        uuid.New(),
		FirstName: "John",
		LastName:  "Doe",
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() guest.Guest {
	return guest.Guest{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
	}
}

func (g *GuestBuilder) BuildRegisterRequestDTO() reqdto.RegisterGuestRequest {
	return reqdto.RegisterGuestRequest{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
	}
}
