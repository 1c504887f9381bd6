package cassandra

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

type RoomStore struct {
	session *gocql.Session
}

func NewRoomStore(session *gocql.Session) *RoomStore {
	return &RoomStore{session: session}
}

func (s *RoomStore) Exists(ctx context.Context, r booking.Room) (bool, error) {
	var found int
	err := s.session.Query(
		`SELECT room_number FROM rooms WHERE hotel_id = ? AND room_number = ?`,
		gocql.UUID(r.HotelID), r.RoomNumber,
	).WithContext(ctx).Scan(&found)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	return true, nil
}

func (s *RoomStore) Insert(ctx context.Context, r booking.Room) error {
	applied, err := s.session.Query(
		`INSERT INTO rooms (hotel_id, room_number) VALUES (?, ?) IF NOT EXISTS`,
		gocql.UUID(r.HotelID), r.RoomNumber,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	if !applied {
		return infra.WrapRepoErr("room row already present", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (s *RoomStore) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]booking.Room, error) {
	iter := s.session.Query(
		`SELECT hotel_id, room_number FROM rooms WHERE hotel_id = ?`, gocql.UUID(hotelID),
	).WithContext(ctx).Iter()

	var (
		rooms []booking.Room
		id    gocql.UUID
		num   int
	)
	for iter.Scan(&id, &num) {
		rooms = append(rooms, booking.Room{HotelID: uuid.UUID(id), RoomNumber: num})
	}
	if err := iter.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel inventory", err)
	}
	return rooms, nil
}
