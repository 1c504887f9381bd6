package queries

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuestBookingReader interface {
	// FindByGuestAndDate queries the by-guest view partition (guest id, date).
	FindByGuestAndDate(ctx context.Context, guestID uuid.UUID, date time.Time) ([]booking.RoomByGuestAndDate, error)
}

type BookingQueries interface {
	// FindBookedRooms reconstructs the guest's bookings for one date,
	// projected into the by-hotel shape. An empty partition is NotFound,
	// never an empty success list.
	FindBookedRooms(ctx context.Context, guestID uuid.UUID, date time.Time) ([]booking.RoomByHotelAndDate, error)
}

type bookingQueriesImpl struct {
	guestBookings GuestBookingReader
}

func NewBookingQueries(guestBookings GuestBookingReader) BookingQueries {
	return &bookingQueriesImpl{guestBookings: guestBookings}
}

func (q *bookingQueriesImpl) FindBookedRooms(ctx context.Context, guestID uuid.UUID, date time.Time) ([]booking.RoomByHotelAndDate, error) {
	// Guest id is checked before the date.
	if guestID == uuid.Nil {
		return nil, errs.InvalidInputf("cannot perform search of the booked room for the empty guest id")
	}
	if date.IsZero() {
		return nil, errs.InvalidInputf("cannot perform search of the booked room for the empty reservation date")
	}

	rows, err := q.guestBookings.FindByGuestAndDate(ctx, guestID, booking.NormalizeDate(date))
	if err != nil {
		return nil, errs.Wrap(err, "failed to query guest bookings")
	}
	if len(rows) == 0 {
		return nil, errs.NotFoundf("cannot find the booked rooms for the guest id '%s' and given date '%s'",
			guestID, booking.FormatDate(date))
	}

	booked := make([]booking.RoomByHotelAndDate, len(rows))
	for i, row := range rows {
		booked[i] = booking.ProjectToHotelView(row)
	}

	slog.Debug("found booked rooms for the guest", "guest_id", guestID, "count", len(booked))
	return booked, nil
}
