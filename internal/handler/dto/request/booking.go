package request

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookRoomRequest struct {
	GuestID    uuid.UUID `json:"guest_id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomNumber int       `json:"room_number"`
	Date       string    `json:"date"`
}

func (r BookRoomRequest) ToDomain() (booking.Request, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.Request{}, errs.InvalidInputf("invalid reservation date '%s', expected YYYY-MM-DD", r.Date)
	}
	return booking.Request{
		GuestID:    r.GuestID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		Date:       date,
	}, nil
}

type AddRoomRequest struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomNumber int       `json:"room_number"`
}

func (r AddRoomRequest) ToDomain() booking.Room {
	return booking.Room{
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
	}
}
