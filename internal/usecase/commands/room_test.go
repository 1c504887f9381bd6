//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new inventory unit", func(t *testing.T) {
		store := memstore.NewRoomStore()
		svc := commands.NewRoomCommands(store)
		room := booking.Room{HotelID: uuid.New(), RoomNumber: 101}

		added, err := svc.AddRoom(ctx, room)
		require.NoError(t, err)
		assert.Equal(t, room, added)

		inventory, err := store.FindByHotel(ctx, room.HotelID)
		require.NoError(t, err)
		assert.Equal(t, []booking.Room{room}, inventory)
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name string
			room booking.Room
		}{
			{name: "empty hotel id", room: booking.Room{RoomNumber: 101}},
			{name: "zero room number", room: booking.Room{HotelID: uuid.New()}},
			{name: "negative room number", room: booking.Room{HotelID: uuid.New(), RoomNumber: -1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := commands.NewRoomCommands(memstore.NewRoomStore())
				_, err := svc.AddRoom(ctx, tc.room)
				assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
			})
		}
	})

	t.Run("adding the same room twice is rejected", func(t *testing.T) {
		store := memstore.NewRoomStore()
		svc := commands.NewRoomCommands(store)
		room := booking.Room{HotelID: uuid.New(), RoomNumber: 101}

		_, err := svc.AddRoom(ctx, room)
		require.NoError(t, err)

		_, err = svc.AddRoom(ctx, room)
		assert.True(t, errs.Is(err, errs.ErrAlreadyExists), "got %v", err)

		inventory, err := store.FindByHotel(ctx, room.HotelID)
		require.NoError(t, err)
		assert.Len(t, inventory, 1)
	})

	t.Run("same room number in another hotel is a distinct unit", func(t *testing.T) {
		store := memstore.NewRoomStore()
		svc := commands.NewRoomCommands(store)

		_, err := svc.AddRoom(ctx, booking.Room{HotelID: uuid.New(), RoomNumber: 101})
		require.NoError(t, err)
		_, err = svc.AddRoom(ctx, booking.Room{HotelID: uuid.New(), RoomNumber: 101})
		assert.NoError(t, err)
	})
}
