package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cassandra"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewGateways,
	),
)

// Gateways binds every store port in one place. The same concrete store
// backs both the command-side gateway and the query-side reader of its
// table.
type Gateways struct {
	fx.Out

	Guests           commands.GuestGateway
	Hotels           commands.HotelGateway
	HotelsByCity     commands.HotelByCityGateway
	Rooms            commands.RoomGateway
	RoomsByHotelDate commands.RoomByHotelAndDateGateway
	RoomsByGuestDate commands.RoomByGuestAndDateGateway

	HotelsByCityReader queries.HotelByCityReader
	HotelReader        queries.HotelReader
	GuestBookings      queries.GuestBookingReader
	RoomReader         queries.RoomReader
	BookedRooms        queries.BookedRoomReader
}

func NewGateways(lc fx.Lifecycle, cfg config.Config) (Gateways, error) {
	if cfg.Store.Driver == "memory" {
		slog.Warn("using in-memory store gateways; rows do not survive restarts")
		return memoryGateways(), nil
	}
	return cassandraGateways(lc, cfg)
}

func memoryGateways() Gateways {
	guests := memstore.NewGuestStore()
	hotels := memstore.NewHotelStore()
	hotelsByCity := memstore.NewHotelByCityStore()
	rooms := memstore.NewRoomStore()
	roomsByHotelDate := memstore.NewRoomByHotelAndDateStore()
	roomsByGuestDate := memstore.NewRoomByGuestAndDateStore()

	return Gateways{
		Guests:           guests,
		Hotels:           hotels,
		HotelsByCity:     hotelsByCity,
		Rooms:            rooms,
		RoomsByHotelDate: roomsByHotelDate,
		RoomsByGuestDate: roomsByGuestDate,

		HotelsByCityReader: hotelsByCity,
		HotelReader:        hotels,
		GuestBookings:      roomsByGuestDate,
		RoomReader:         rooms,
		BookedRooms:        roomsByHotelDate,
	}
}

func cassandraGateways(lc fx.Lifecycle, cfg config.Config) (Gateways, error) {
	session, cleanup, err := cassandra.Connect(cfg.Cassandra)
	if err != nil {
		return Gateways{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	hotels := cassandra.NewHotelStore(session)
	hotelsByCity := cassandra.NewHotelByCityStore(session)
	rooms := cassandra.NewRoomStore(session)
	roomsByHotelDate := cassandra.NewRoomByHotelAndDateStore(session)
	roomsByGuestDate := cassandra.NewRoomByGuestAndDateStore(session)

	return Gateways{
		Guests:           cassandra.NewGuestStore(session),
		Hotels:           hotels,
		HotelsByCity:     hotelsByCity,
		Rooms:            rooms,
		RoomsByHotelDate: roomsByHotelDate,
		RoomsByGuestDate: roomsByGuestDate,

		HotelsByCityReader: hotelsByCity,
		HotelReader:        hotels,
		GuestBookings:      roomsByGuestDate,
		RoomReader:         rooms,
		BookedRooms:        roomsByHotelDate,
	}, nil
}
