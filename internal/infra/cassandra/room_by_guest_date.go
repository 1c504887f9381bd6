package cassandra

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

type RoomByGuestAndDateStore struct {
	session *gocql.Session
}

func NewRoomByGuestAndDateStore(session *gocql.Session) *RoomByGuestAndDateStore {
	return &RoomByGuestAndDateStore{session: session}
}

func (s *RoomByGuestAndDateStore) Exists(ctx context.Context, key booking.GuestDateKey) (bool, error) {
	var found int
	err := s.session.Query(
		`SELECT room_number FROM rooms_by_guest_date
		 WHERE guest_id = ? AND date = ? AND hotel_id = ? AND room_number = ?`,
		gocql.UUID(key.GuestID), key.Date, gocql.UUID(key.HotelID), key.RoomNumber,
	).WithContext(ctx).Scan(&found)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check guest booking view row", err)
	}
	return true, nil
}

func (s *RoomByGuestAndDateStore) Insert(ctx context.Context, row booking.RoomByGuestAndDate) error {
	applied, err := s.session.Query(
		`INSERT INTO rooms_by_guest_date (guest_id, date, hotel_id, room_number, confirmation_number)
		 VALUES (?, ?, ?, ?, ?) IF NOT EXISTS`,
		gocql.UUID(row.GuestID), row.Date, gocql.UUID(row.HotelID), row.RoomNumber, row.ConfirmationNumber,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return infra.WrapRepoErr("failed to insert guest booking view row", err)
	}
	if !applied {
		return infra.WrapRepoErr("guest booking view row already present", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (s *RoomByGuestAndDateStore) FindByGuestAndDate(ctx context.Context, guestID uuid.UUID, date time.Time) ([]booking.RoomByGuestAndDate, error) {
	iter := s.session.Query(
		`SELECT guest_id, date, hotel_id, room_number, confirmation_number FROM rooms_by_guest_date
		 WHERE guest_id = ? AND date = ?`,
		gocql.UUID(guestID), date,
	).WithContext(ctx).Iter()

	var (
		rows         []booking.RoomByGuestAndDate
		gID, hID     gocql.UUID
		rowDate      time.Time
		num          int
		confirmation string
	)
	for iter.Scan(&gID, &rowDate, &hID, &num, &confirmation) {
		rows = append(rows, booking.RoomByGuestAndDate{
			GuestID:            uuid.UUID(gID),
			Date:               booking.NormalizeDate(rowDate),
			HotelID:            uuid.UUID(hID),
			RoomNumber:         num,
			ConfirmationNumber: confirmation,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to query guest bookings", err)
	}
	return rows, nil
}
