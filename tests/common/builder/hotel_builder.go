//go:build unit

package builder

import (
	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:         uuid.New(),
		Name:       "The Savoy",
		Phone:      "+44-20-7836-4343",
		Street:     "Strand",
		City:       "London",
		Province:   "Greater London",
		PostalCode: "WC2R 0EZ",
		Country:    "UK",
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) BuildDomain() hotel.Hotel {
	return hotel.Hotel{
		ID:    h.ID,
		Name:  h.Name,
		Phone: h.Phone,
		Address: hotel.Address{
			Street:     h.Street,
			City:       h.City,
			Province:   h.Province,
			PostalCode: h.PostalCode,
			Country:    h.Country,
		},
	}
}

func (h *HotelBuilder) BuildAddRequestDTO() reqdto.AddHotelRequest {
	return reqdto.AddHotelRequest{
		ID:    h.ID,
		Name:  h.Name,
		Phone: h.Phone,
		Address: reqdto.AddressPayload{
			Street:     h.Street,
			City:       h.City,
			Province:   h.Province,
			PostalCode: h.PostalCode,
			Country:    h.Country,
		},
	}
}
