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
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBookedRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("projects the guest's bookings into the by-hotel shape", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		svc := queries.NewBookingQueries(store)
		b := builder.NewBookingBuilder()
		require.NoError(t, store.Insert(ctx, b.BuildGuestView()))

		booked, err := svc.FindBookedRooms(ctx, b.GuestID, b.Date)
		require.NoError(t, err)
		require.Len(t, booked, 1)
		assert.Equal(t, b.BuildHotelView(), booked[0])
	})

	t.Run("multiple bookings on the date come back together", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		svc := queries.NewBookingQueries(store)
		first := builder.NewBookingBuilder()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.GuestID = first.GuestID
			b.RoomNumber = 205
		})
		require.NoError(t, store.Insert(ctx, first.BuildGuestView()))
		require.NoError(t, store.Insert(ctx, second.BuildGuestView()))

		booked, err := svc.FindBookedRooms(ctx, first.GuestID, first.Date)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]booking.RoomByHotelAndDate{first.BuildHotelView(), second.BuildHotelView()},
			booked)
	})

	t.Run("a booking on another date stays invisible", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		svc := queries.NewBookingQueries(store)
		b := builder.NewBookingBuilder()
		require.NoError(t, store.Insert(ctx, b.BuildGuestView()))

		_, err := svc.FindBookedRooms(ctx, b.GuestID, b.Date.AddDate(0, 0, 1))
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	t.Run("lookup with time of day still hits the calendar-date partition", func(t *testing.T) {
		store := memstore.NewRoomByGuestAndDateStore()
		svc := queries.NewBookingQueries(store)
		b := builder.NewBookingBuilder()
		require.NoError(t, store.Insert(ctx, b.BuildGuestView()))

		booked, err := svc.FindBookedRooms(ctx, b.GuestID, b.Date.Add(17*time.Hour))
		require.NoError(t, err)
		assert.Len(t, booked, 1)
	})

	t.Run("empty guest id is reported before the empty date", func(t *testing.T) {
		svc := queries.NewBookingQueries(memstore.NewRoomByGuestAndDateStore())
		_, err := svc.FindBookedRooms(ctx, uuid.Nil, time.Time{})
		require.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
		assert.Contains(t, err.Error(), "guest id")
	})

	t.Run("empty date is invalid input", func(t *testing.T) {
		svc := queries.NewBookingQueries(memstore.NewRoomByGuestAndDateStore())
		_, err := svc.FindBookedRooms(ctx, uuid.New(), time.Time{})
		require.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
		assert.Contains(t, err.Error(), "date")
	})

	t.Run("guest with no bookings is not found, never an empty list", func(t *testing.T) {
		svc := queries.NewBookingQueries(memstore.NewRoomByGuestAndDateStore())
		booked, err := svc.FindBookedRooms(ctx, uuid.New(), time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
		assert.Nil(t, booked)
	})
}
