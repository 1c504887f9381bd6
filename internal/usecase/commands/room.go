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

type RoomCommands interface {
	// AddRoom registers one bookable inventory unit for a hotel.
	AddRoom(ctx context.Context, r booking.Room) (booking.Room, error)
}

type roomCommandsImpl struct {
	rooms RoomGateway
}

func NewRoomCommands(rooms RoomGateway) RoomCommands {
	return &roomCommandsImpl{rooms: rooms}
}

func (c *roomCommandsImpl) AddRoom(ctx context.Context, r booking.Room) (booking.Room, error) {
	validated, err := validate.For(r).
		Require(func(r booking.Room) bool { return r.HotelID != uuid.Nil },
			func() error { return errs.InvalidInputf("cannot add room with empty hotel id") }).
		Require(func(r booking.Room) bool { return r.RoomNumber > 0 },
			func() error { return errs.InvalidInputf("cannot add room with non-positive room number '%d'", r.RoomNumber) }).
		RequireFrom(c.notYetAdded(ctx),
			func() error { return errs.AlreadyExistsf("the room is already inserted, %s", r) }).
		Result()
	if err != nil {
		return booking.Room{}, err
	}

	if err := c.rooms.Insert(ctx, validated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return booking.Room{}, errs.AlreadyExistsf("the room is already inserted, %s", validated)
		}
		return booking.Room{}, errs.Wrap(err, "failed to insert room")
	}

	slog.Info("successfully added the new room", "hotel_id", validated.HotelID, "room_number", validated.RoomNumber)
	return validated, nil
}

func (c *roomCommandsImpl) notYetAdded(ctx context.Context) func(booking.Room) (bool, error) {
	return func(r booking.Room) (bool, error) {
		exists, err := c.rooms.Exists(ctx, r)
		if err != nil {
			return false, errs.Wrap(err, "failed to check room existence")
		}
		return !exists, nil
	}
}
