package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

type HotelCommands interface {
	// AddHotel stores a new hotel and derives its city index row. The
	// primary row is written before the index row: the index is rebuildable
	// from the primary, never the other way around.
	AddHotel(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error)
}

type hotelCommandsImpl struct {
	hotels       HotelGateway
	hotelsByCity HotelByCityGateway
}

func NewHotelCommands(hotels HotelGateway, hotelsByCity HotelByCityGateway) HotelCommands {
	return &hotelCommandsImpl{hotels: hotels, hotelsByCity: hotelsByCity}
}

func (c *hotelCommandsImpl) AddHotel(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error) {
	validated, err := validate.For(h).
		Require(func(h hotel.Hotel) bool { return h.ID != uuid.Nil },
			func() error { return errs.InvalidInputf("cannot add hotel with empty id") }).
		Require(func(h hotel.Hotel) bool { return h.Name != "" },
			func() error { return errs.InvalidInputf("cannot add hotel with empty name") }).
		Require(func(h hotel.Hotel) bool { return h.Phone != "" },
			func() error { return errs.InvalidInputf("cannot add hotel with empty phone") }).
		Require(func(h hotel.Hotel) bool { return h.Address.City != "" },
			func() error { return errs.InvalidInputf("cannot add hotel with empty address city") }).
		RequireFrom(c.notYetAdded(ctx),
			func() error { return errs.AlreadyExistsf("such hotel information is already added, %s", h) }).
		Result()
	if err != nil {
		return hotel.Hotel{}, err
	}

	if err := c.hotels.Insert(ctx, validated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return hotel.Hotel{}, errs.AlreadyExistsf("such hotel information is already added, %s", validated)
		}
		return hotel.Hotel{}, errs.Wrap(err, "failed to insert hotel")
	}
	if err := c.hotelsByCity.Insert(ctx, hotel.NewByCity(validated)); err != nil {
		// The primary row is already authoritative; a failed index write
		// leaves the hotel registered but unsearchable by city.
		return hotel.Hotel{}, errs.Wrap(err, "failed to insert hotel city index row")
	}

	slog.Info("successfully added the new hotel", "hotel_id", validated.ID, "city", validated.Address.City)
	return validated, nil
}

func (c *hotelCommandsImpl) notYetAdded(ctx context.Context) func(hotel.Hotel) (bool, error) {
	return func(h hotel.Hotel) (bool, error) {
		exists, err := c.hotels.Exists(ctx, h.ID)
		if err != nil {
			return false, errs.Wrap(err, "failed to check hotel existence")
		}
		return !exists, nil
	}
}
