//go:build unit

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	GuestID    uuid.UUID
	HotelID    uuid.UUID
	RoomNumber int
	Date       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestID:    uuid.New(),
		HotelID:    uuid.New(),
		RoomNumber: 101,
		Date:       time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequest() booking.Request {
	return booking.Request{
		GuestID:    b.GuestID,
		HotelID:    b.HotelID,
		RoomNumber: b.RoomNumber,
		Date:       b.Date,
	}
}

// BuildHotelView derives the by-hotel row exactly as a confirmed booking
// would have written it.
func (b *BookingBuilder) BuildHotelView() booking.RoomByHotelAndDate {
	return booking.HotelViewFromRequest(b.BuildRequest())
}

func (b *BookingBuilder) BuildGuestView() booking.RoomByGuestAndDate {
	req := b.BuildRequest()
	return booking.GuestViewFromRequest(req, booking.ConfirmationNumber(req))
}

func (b *BookingBuilder) BuildBookRequestDTO() reqdto.BookRoomRequest {
	return reqdto.BookRoomRequest{
		GuestID:    b.GuestID,
		HotelID:    b.HotelID,
		RoomNumber: b.RoomNumber,
		Date:       booking.FormatDate(b.Date),
	}
}

func (b *BookingBuilder) BuildRoom() booking.Room {
	return booking.Room{
		HotelID:    b.HotelID,
		RoomNumber: b.RoomNumber,
	}
}
