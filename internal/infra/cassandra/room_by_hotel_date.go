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

type RoomByHotelAndDateStore struct {
	session *gocql.Session
}

func NewRoomByHotelAndDateStore(session *gocql.Session) *RoomByHotelAndDateStore {
	return &RoomByHotelAndDateStore{session: session}
}

func (s *RoomByHotelAndDateStore) Get(ctx context.Context, key booking.HotelDateKey) (booking.RoomByHotelAndDate, error) {
	var (
		id   gocql.UUID
		date time.Time
		num  int
	)
	err := s.session.Query(
		`SELECT hotel_id, date, room_number FROM rooms_by_hotel_date
		 WHERE hotel_id = ? AND date = ? AND room_number = ?`,
		gocql.UUID(key.HotelID), key.Date, key.RoomNumber,
	).WithContext(ctx).Scan(&id, &date, &num)
	if errors.Is(err, gocql.ErrNotFound) {
		return booking.RoomByHotelAndDate{}, infra.WrapRepoErr("hotel booking view row not found", err, infra.KindNotFound)
	}
	if err != nil {
		return booking.RoomByHotelAndDate{}, infra.WrapRepoErr("failed to load hotel booking view row", err)
	}
	return booking.RoomByHotelAndDate{
		HotelID:    uuid.UUID(id),
		Date:       booking.NormalizeDate(date),
		RoomNumber: num,
	}, nil
}

func (s *RoomByHotelAndDateStore) Upsert(ctx context.Context, row booking.RoomByHotelAndDate) error {
	err := s.session.Query(
		`INSERT INTO rooms_by_hotel_date (hotel_id, date, room_number) VALUES (?, ?, ?)`,
		gocql.UUID(row.HotelID), row.Date, row.RoomNumber,
	).WithContext(ctx).Exec()
	if err != nil {
		return infra.WrapRepoErr("failed to write hotel booking view row", err)
	}
	return nil
}

func (s *RoomByHotelAndDateStore) FindByHotelAndDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]booking.RoomByHotelAndDate, error) {
	iter := s.session.Query(
		`SELECT hotel_id, date, room_number FROM rooms_by_hotel_date
		 WHERE hotel_id = ? AND date >= ? AND date < ?`,
		gocql.UUID(hotelID), start, end,
	).WithContext(ctx).Iter()

	var (
		rows []booking.RoomByHotelAndDate
		id   gocql.UUID
		date time.Time
		num  int
	)
	for iter.Scan(&id, &date, &num) {
		rows = append(rows, booking.RoomByHotelAndDate{
			HotelID:    uuid.UUID(id),
			Date:       booking.NormalizeDate(date),
			RoomNumber: num,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to query booked rooms by date range", err)
	}
	return rows, nil
}
