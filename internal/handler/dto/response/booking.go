package response

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingResponse struct {
	GuestID            uuid.UUID `json:"guest_id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	RoomNumber         int       `json:"room_number"`
	Date               string    `json:"date"`
	ConfirmationNumber string    `json:"confirmation_number"`
}

func FromBookingResult(result *commands.BookRoomResult) *BookingResponse {
	req := result.Request
	return &BookingResponse{
		GuestID:            req.GuestID,
		HotelID:            req.HotelID,
		RoomNumber:         req.RoomNumber,
		Date:               booking.FormatDate(booking.NormalizeDate(req.Date)),
		ConfirmationNumber: result.ConfirmationNumber,
	}
}

type RoomResponse struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomNumber int       `json:"room_number"`
}

func FromRoom(r booking.Room) *RoomResponse {
	return &RoomResponse{HotelID: r.HotelID, RoomNumber: r.RoomNumber}
}

func FromRooms(rooms []booking.Room) []*RoomResponse {
	out := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = FromRoom(r)
	}
	return out
}

type BookedRoomResponse struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	Date       string    `json:"date"`
	RoomNumber int       `json:"room_number"`
}

func FromBookedRoom(row booking.RoomByHotelAndDate) *BookedRoomResponse {
	return &BookedRoomResponse{
		HotelID:    row.HotelID,
		Date:       booking.FormatDate(row.Date),
		RoomNumber: row.RoomNumber,
	}
}

func FromBookedRooms(rows []booking.RoomByHotelAndDate) []*BookedRoomResponse {
	out := make([]*BookedRoomResponse, len(rows))
	for i, row := range rows {
		out[i] = FromBookedRoom(row)
	}
	return out
}
