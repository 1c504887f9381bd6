package response

import (
	"hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type HotelResponse struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address AddressResponse `json:"address"`
}

func FromHotel(h hotel.Hotel) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, &h)
	return &resp
}

func FromHotels(hotels []hotel.Hotel) []*HotelResponse {
	out := make([]*HotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = FromHotel(h)
	}
	return out
}
