package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

type HotelByCityReader interface {
	// HotelIDsInCity queries the city-index partition.
	HotelIDsInCity(ctx context.Context, city string) ([]uuid.UUID, error)
}

type HotelReader interface {
	// FindByIDs hydrates full hotel rows from the primary table.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]hotel.Hotel, error)
}

type HotelQueries interface {
	// FindHotelsInCity resolves the city index and hydrates the matching
	// hotels from the primary table. Result order follows the primary
	// lookup, not the index.
	FindHotelsInCity(ctx context.Context, city string) ([]hotel.Hotel, error)
}

type hotelQueriesImpl struct {
	index  HotelByCityReader
	hotels HotelReader
}

func NewHotelQueries(index HotelByCityReader, hotels HotelReader) HotelQueries {
	return &hotelQueriesImpl{index: index, hotels: hotels}
}

func (q *hotelQueriesImpl) FindHotelsInCity(ctx context.Context, city string) ([]hotel.Hotel, error) {
	if _, err := validate.Check(city,
		func(c string) bool { return c != "" },
		func() error { return errs.InvalidInputf("cannot find the hotels for the empty city name") },
	); err != nil {
		return nil, err
	}

	ids, err := q.index.HotelIDsInCity(ctx, city)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query hotel city index")
	}
	if len(ids) == 0 {
		return nil, errs.NotFoundf("cannot find hotels for the given city '%s'", city)
	}

	hotels, err := q.hotels.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hydrate hotels by ids")
	}

	slog.Debug("found hotels in the city", "city", city, "count", len(hotels))
	return hotels, nil
}
