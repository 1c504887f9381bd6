//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestStoreConditionalInsert(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewGuestStore()
	g := guest.Guest{ID: uuid.New(), FirstName: "John", LastName: "Doe"}

	require.NoError(t, store.Insert(ctx, g))

	err := store.Insert(ctx, g)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	exists, err := store.Exists(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestHotelStoreFindByIDs(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewHotelStore()
	first := hotel.Hotel{ID: uuid.New(), Name: "A", Phone: "1"}
	second := hotel.Hotel{ID: uuid.New(), Name: "B", Phone: "2"}
	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	t.Run("hydrates in the requested order", func(t *testing.T) {
		found, err := store.FindByIDs(ctx, []uuid.UUID{second.ID, first.ID})
		require.NoError(t, err)
		assert.Equal(t, []hotel.Hotel{second, first}, found)
	})

	t.Run("unknown ids are skipped silently", func(t *testing.T) {
		found, err := store.FindByIDs(ctx, []uuid.UUID{first.ID, uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, []hotel.Hotel{first}, found)
	})
}

func TestHotelByCityStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewHotelByCityStore()
	id := uuid.New()

	require.NoError(t, store.Insert(ctx, hotel.ByCity{City: "London", HotelID: id}))

	t.Run("re-inserting the identical projection row is a no-op", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, hotel.ByCity{City: "London", HotelID: id}))
		ids, err := store.HotelIDsInCity(ctx, "London")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, ids)
	})

	t.Run("partitions are isolated by city", func(t *testing.T) {
		ids, err := store.HotelIDsInCity(ctx, "Paris")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRoomByHotelAndDateStore(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC) }
	hotelID := uuid.New()

	t.Run("get of an absent row is a not-found repository error", func(t *testing.T) {
		store := memstore.NewRoomByHotelAndDateStore()
		_, err := store.Get(ctx, booking.HotelDateKey{HotelID: hotelID, Date: day(1), RoomNumber: 101})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("upsert of the same key keeps a single row", func(t *testing.T) {
		store := memstore.NewRoomByHotelAndDateStore()
		row := booking.RoomByHotelAndDate{HotelID: hotelID, Date: day(1), RoomNumber: 101}
		require.NoError(t, store.Upsert(ctx, row))
		require.NoError(t, store.Upsert(ctx, row))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("keys normalize the time of day", func(t *testing.T) {
		store := memstore.NewRoomByHotelAndDateStore()
		row := booking.RoomByHotelAndDate{HotelID: hotelID, Date: day(1).Add(13 * time.Hour), RoomNumber: 101}
		require.NoError(t, store.Upsert(ctx, row))

		_, err := store.Get(ctx, booking.HotelDateKey{HotelID: hotelID, Date: day(1), RoomNumber: 101})
		assert.NoError(t, err)
	})

	t.Run("range scan is inclusive of start, exclusive of end", func(t *testing.T) {
		store := memstore.NewRoomByHotelAndDateStore()
		for d := 1; d <= 4; d++ {
			require.NoError(t, store.Upsert(ctx, booking.RoomByHotelAndDate{
				HotelID: hotelID, Date: day(d), RoomNumber: 100 + d,
			}))
		}

		rows, err := store.FindByHotelAndDateRange(ctx, hotelID, day(2), day(4))
		require.NoError(t, err)
		numbers := make([]int, len(rows))
		for i, r := range rows {
			numbers[i] = r.RoomNumber
		}
		assert.ElementsMatch(t, []int{102, 103}, numbers)
	})
}

func TestRoomByGuestAndDateStore(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	guestID := uuid.New()

	row := func(roomNumber int) booking.RoomByGuestAndDate {
		return booking.RoomByGuestAndDate{
			GuestID:            guestID,
			Date:               date,
			HotelID:            uuid.New(),
			RoomNumber:         roomNumber,
			ConfirmationNumber: "c0ffee",
		}
	}

	t.Run("insert is conditional on the composite key", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		first := row(101)
		require.NoError(t, store.Insert(ctx, first))

		err := store.Insert(ctx, first)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("partition scan returns rows in insertion order", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		first, second := row(101), row(205)
		require.NoError(t, store.Insert(ctx, first))
		require.NoError(t, store.Insert(ctx, second))

		rows, err := store.FindByGuestAndDate(ctx, guestID, date)
		require.NoError(t, err)
		assert.Equal(t, []booking.RoomByGuestAndDate{first, second}, rows)
	})

	t.Run("other partitions stay invisible", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		require.NoError(t, store.Insert(ctx, row(101)))

		rows, err := store.FindByGuestAndDate(ctx, uuid.New(), date)
		require.NoError(t, err)
		assert.Empty(t, rows)

		rows, err = store.FindByGuestAndDate(ctx, guestID, date.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
