package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

// BookRoomResult carries the request back unchanged together with the
// confirmation number attached to the stored by-guest row.
type BookRoomResult struct {
	Request            booking.Request
	ConfirmationNumber string
}

type BookingCommands interface {
	// PerformBooking validates the request against the denormalized views
	// and, on success, writes the by-hotel row and then the by-guest row,
	// in that fixed order.
	PerformBooking(ctx context.Context, req booking.Request) (*BookRoomResult, error)
}

type bookingCommandsImpl struct {
	roomsByHotelDate RoomByHotelAndDateGateway
	roomsByGuestDate RoomByGuestAndDateGateway
}

func NewBookingCommands(
	roomsByHotelDate RoomByHotelAndDateGateway,
	roomsByGuestDate RoomByGuestAndDateGateway,
) BookingCommands {
	return &bookingCommandsImpl{
		roomsByHotelDate: roomsByHotelDate,
		roomsByGuestDate: roomsByGuestDate,
	}
}

func (c *bookingCommandsImpl) PerformBooking(ctx context.Context, req booking.Request) (*BookRoomResult, error) {
	validated, err := c.validateRequest(req)
	if err != nil {
		return nil, err
	}

	// The by-hotel-and-date row must already exist: that view doubles as
	// the inventory-availability source and is seeded before bookings are
	// accepted. Absence means the room is unknown, not free.
	hotelKey := validated.HotelDateKey()
	if _, err := c.roomsByHotelDate.Get(ctx, hotelKey); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFoundf("the following room does not exist, room number '%d', hotel id '%s', date '%s'",
				hotelKey.RoomNumber, hotelKey.HotelID, booking.FormatDate(hotelKey.Date))
		}
		return nil, errs.Wrap(err, "failed to verify room")
	}

	guestKey := validated.GuestDateKey()
	booked, err := c.roomsByGuestDate.Exists(ctx, guestKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check existing booking")
	}
	if booked {
		return nil, c.alreadyBooked(guestKey)
	}

	confirmationNumber := booking.ConfirmationNumber(validated)
	hotelRow := booking.HotelViewFromRequest(validated)
	guestRow := booking.GuestViewFromRequest(validated, confirmationNumber)

	// Fixed order: hotel view first, guest view second. A failure between
	// the two writes leaves the views divergent; there is no rollback, only
	// one idempotent retry of the derived write (same key, same row).
	if err := c.roomsByHotelDate.Upsert(ctx, hotelRow); err != nil {
		return nil, errs.Wrap(err, "failed to write hotel booking view")
	}
	if err := c.insertGuestView(ctx, guestRow); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, c.alreadyBooked(guestKey)
		}
		return nil, errs.Wrap(err, "failed to write guest booking view")
	}

	slog.Info("successfully booked the room",
		"guest_id", validated.GuestID,
		"hotel_id", validated.HotelID,
		"room_number", validated.RoomNumber,
		"date", booking.FormatDate(guestKey.Date),
		"confirmation_number", confirmationNumber,
	)
	return &BookRoomResult{Request: req, ConfirmationNumber: confirmationNumber}, nil
}

func (c *bookingCommandsImpl) validateRequest(req booking.Request) (booking.Request, error) {
	return validate.For(req).
		Require(func(r booking.Request) bool { return r.GuestID != uuid.Nil },
			func() error { return errs.InvalidInputf("cannot perform reservation with empty guest id") }).
		Require(func(r booking.Request) bool { return r.HotelID != uuid.Nil },
			func() error { return errs.InvalidInputf("cannot perform reservation with empty hotel id") }).
		Require(func(r booking.Request) bool { return r.RoomNumber > 0 },
			func() error { return errs.InvalidInputf("cannot perform reservation with non-positive room number '%d'", req.RoomNumber) }).
		Require(func(r booking.Request) bool { return !r.Date.IsZero() },
			func() error { return errs.InvalidInputf("cannot perform reservation with empty reservation date") }).
		Result()
}

func (c *bookingCommandsImpl) insertGuestView(ctx context.Context, row booking.RoomByGuestAndDate) error {
	err := c.roomsByGuestDate.Insert(ctx, row)
	if err == nil || infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	// Transient failure after the hotel view was written: one retry, the
	// insert is idempotent for the same composite key.
	slog.Warn("retrying guest booking view write", "error", err)
	return c.roomsByGuestDate.Insert(ctx, row)
}

func (c *bookingCommandsImpl) alreadyBooked(key booking.GuestDateKey) error {
	return errs.AlreadyExistsf("the following room is already booked, room number '%d', hotel id '%s', date '%s'",
		key.RoomNumber, key.HotelID, booking.FormatDate(key.Date))
}
