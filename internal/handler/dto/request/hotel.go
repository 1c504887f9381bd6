package request

import (
	"hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type AddHotelRequest struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address AddressPayload `json:"address"`
}

func (r AddHotelRequest) ToDomain() hotel.Hotel {
	h := hotel.Hotel{
		ID:    r.ID,
		Name:  r.Name,
		Phone: r.Phone,
	}
	_ = copier.Copy(&h.Address, &r.Address)
	return h
}
