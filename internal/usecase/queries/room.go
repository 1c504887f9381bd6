package queries

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReader interface {
	// FindByHotel returns the registered inventory of one hotel.
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]booking.Room, error)
}

type BookedRoomReader interface {
	// FindByHotelAndDateRange collects by-hotel view rows for every date in
	// [start, end).
	FindByHotelAndDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]booking.RoomByHotelAndDate, error)
}

type RoomQueries interface {
	// FindFreeRooms returns the hotel's inventory minus the rooms booked on
	// any date within [start, end).
	FindFreeRooms(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]booking.Room, error)
}

type roomQueriesImpl struct {
	rooms  RoomReader
	booked BookedRoomReader
}

func NewRoomQueries(rooms RoomReader, booked BookedRoomReader) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, booked: booked}
}

func (q *roomQueriesImpl) FindFreeRooms(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]booking.Room, error) {
	if hotelID == uuid.Nil {
		return nil, errs.InvalidInputf("cannot search free rooms for the empty hotel id")
	}
	startDate, endDate := booking.NormalizeDate(start), booking.NormalizeDate(end)
	if start.IsZero() || end.IsZero() || !startDate.Before(endDate) {
		return nil, errs.InvalidInputf("cannot search free rooms for the invalid date range '%s'..'%s'",
			booking.FormatDate(start), booking.FormatDate(end))
	}

	inventory, err := q.rooms.FindByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query hotel inventory")
	}

	bookedRows, err := q.booked.FindByHotelAndDateRange(ctx, hotelID, startDate, endDate)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query booked rooms")
	}

	bookedNumbers := make(map[int]struct{}, len(bookedRows))
	for _, row := range bookedRows {
		bookedNumbers[row.RoomNumber] = struct{}{}
	}

	free := make([]booking.Room, 0, len(inventory))
	for _, room := range inventory {
		if _, taken := bookedNumbers[room.RoomNumber]; !taken {
			free = append(free, room)
		}
	}
	if len(free) == 0 {
		return nil, errs.NotFoundf("no free rooms in hotel '%s' between '%s' and '%s'",
			hotelID, booking.FormatDate(startDate), booking.FormatDate(endDate))
	}

	slog.Debug("found free rooms in the hotel", "hotel_id", hotelID, "count", len(free))
	return free, nil
}
