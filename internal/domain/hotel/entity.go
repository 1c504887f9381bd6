package hotel

import (
	"fmt"

	"github.com/google/uuid"
)

type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// Hotel is the primary, authoritative hotel row. Created via registration
// and immutable afterwards.
type Hotel struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address Address
}

func (h Hotel) String() string {
	return fmt.Sprintf("hotel id '%s', name '%s', city '%s'", h.ID, h.Name, h.Address.City)
}

// ByCity is the city-indexed secondary view, derived 1:1 from Hotel at
// registration time. Key: (city, hotel id). It is a pure lookup projection
// and is never written independently of the primary row.
type ByCity struct {
	City    string
	HotelID uuid.UUID
}

func NewByCity(h Hotel) ByCity {
	return ByCity{
		City:    h.Address.City,
		HotelID: h.ID,
	}
}
