package commands

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
)

// Row-store gateway ports. One port per table, each offering only the
// operations the write side needs: keyed reads, existence checks and
// inserts. The store offers no cross-table transactions; every consistency
// guarantee lives in the command implementations.

type GuestGateway interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Insert is conditional (insert-if-absent); a lost race surfaces as a
	// DUPLICATE_KEY repository error.
	Insert(ctx context.Context, g guest.Guest) error
}

type HotelGateway interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, h hotel.Hotel) error
}

type HotelByCityGateway interface {
	Insert(ctx context.Context, row hotel.ByCity) error
}

type RoomGateway interface {
	Exists(ctx context.Context, room booking.Room) (bool, error)
	Insert(ctx context.Context, room booking.Room) error
}

type RoomByHotelAndDateGateway interface {
	// Get returns a NOT_FOUND repository error when the row is absent.
	Get(ctx context.Context, key booking.HotelDateKey) (booking.RoomByHotelAndDate, error)
	// Upsert is unconditional: during a booking the row is required to
	// pre-exist and the write re-asserts it.
	Upsert(ctx context.Context, row booking.RoomByHotelAndDate) error
}

type RoomByGuestAndDateGateway interface {
	Exists(ctx context.Context, key booking.GuestDateKey) (bool, error)
	// Insert is conditional on the full composite key; it is the atomic
	// guard against two writers confirming the same booking.
	Insert(ctx context.Context, row booking.RoomByGuestAndDate) error
}
