//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomQueryFixture struct {
	svc    queries.RoomQueries
	rooms  *memstore.RoomStore
	booked *memstore.RoomByHotelAndDateStore
}

func newRoomQueryFixture() roomQueryFixture {
	rooms := memstore.NewRoomStore()
	booked := memstore.NewRoomByHotelAndDateStore()
	return roomQueryFixture{
		svc:    queries.NewRoomQueries(rooms, booked),
		rooms:  rooms,
		booked: booked,
	}
}

func (f roomQueryFixture) seedInventory(t *testing.T, hotelID uuid.UUID, numbers ...int) {
	t.Helper()
	for _, n := range numbers {
		require.NoError(t, f.rooms.Insert(context.Background(), booking.Room{HotelID: hotelID, RoomNumber: n}))
	}
}

func (f roomQueryFixture) seedBooking(t *testing.T, hotelID uuid.UUID, roomNumber int, date time.Time) {
	t.Helper()
	require.NoError(t, f.booked.Upsert(context.Background(), booking.RoomByHotelAndDate{
		HotelID:    hotelID,
		Date:       date,
		RoomNumber: roomNumber,
	}))
}

func TestFindFreeRooms(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC) }

	t.Run("whole inventory is free when nothing is booked", func(t *testing.T) {
		f := newRoomQueryFixture()
		hotelID := uuid.New()
		f.seedInventory(t, hotelID, 101, 102, 103)

		free, err := f.svc.FindFreeRooms(ctx, hotelID, day(1), day(3))
		require.NoError(t, err)
		assert.Len(t, free, 3)
	})

	t.Run("a room booked on any date in the range is excluded", func(t *testing.T) {
		f := newRoomQueryFixture()
		hotelID := uuid.New()
		f.seedInventory(t, hotelID, 101, 102, 103)
		f.seedBooking(t, hotelID, 102, day(2))

		free, err := f.svc.FindFreeRooms(ctx, hotelID, day(1), day(3))
		require.NoError(t, err)
		assert.ElementsMatch(t, []booking.Room{
			{HotelID: hotelID, RoomNumber: 101},
			{HotelID: hotelID, RoomNumber: 103},
		}, free)
	})

	t.Run("the end date is exclusive", func(t *testing.T) {
		f := newRoomQueryFixture()
		hotelID := uuid.New()
		f.seedInventory(t, hotelID, 101)
		f.seedBooking(t, hotelID, 101, day(3))

		free, err := f.svc.FindFreeRooms(ctx, hotelID, day(1), day(3))
		require.NoError(t, err)
		assert.Len(t, free, 1)
	})

	t.Run("bookings in another hotel do not block the room number", func(t *testing.T) {
		f := newRoomQueryFixture()
		hotelID := uuid.New()
		f.seedInventory(t, hotelID, 101)
		f.seedBooking(t, uuid.New(), 101, day(1))

		free, err := f.svc.FindFreeRooms(ctx, hotelID, day(1), day(2))
		require.NoError(t, err)
		assert.Len(t, free, 1)
	})

	t.Run("fully booked hotel is not found, never an empty list", func(t *testing.T) {
		f := newRoomQueryFixture()
		hotelID := uuid.New()
		f.seedInventory(t, hotelID, 101)
		f.seedBooking(t, hotelID, 101, day(1))

		free, err := f.svc.FindFreeRooms(ctx, hotelID, day(1), day(2))
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
		assert.Nil(t, free)
	})

	t.Run("hotel with no registered inventory is not found", func(t *testing.T) {
		f := newRoomQueryFixture()
		_, err := f.svc.FindFreeRooms(ctx, uuid.New(), day(1), day(2))
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	t.Run("range validation", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end time.Time
		}{
			{name: "zero start", start: time.Time{}, end: day(2)},
			{name: "zero end", start: day(1), end: time.Time{}},
			{name: "start equals end", start: day(2), end: day(2)},
			{name: "start after end", start: day(3), end: day(1)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newRoomQueryFixture()
				hotelID := uuid.New()
				f.seedInventory(t, hotelID, 101)

				_, err := f.svc.FindFreeRooms(ctx, hotelID, tc.start, tc.end)
				assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
			})
		}
	})

	t.Run("empty hotel id is invalid input", func(t *testing.T) {
		f := newRoomQueryFixture()
		_, err := f.svc.FindFreeRooms(ctx, uuid.Nil, day(1), day(2))
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
	})
}
