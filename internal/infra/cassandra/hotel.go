package cassandra

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

type HotelStore struct {
	session *gocql.Session
}

func NewHotelStore(session *gocql.Session) *HotelStore {
	return &HotelStore{session: session}
}

func (s *HotelStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found gocql.UUID
	err := s.session.Query(`SELECT id FROM hotels WHERE id = ?`, gocql.UUID(id)).
		WithContext(ctx).Scan(&found)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel existence", err)
	}
	return true, nil
}

func (s *HotelStore) Insert(ctx context.Context, h hotel.Hotel) error {
	applied, err := s.session.Query(
		`INSERT INTO hotels (id, name, phone, street, city, province, postal_code, country)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
		gocql.UUID(h.ID), h.Name, h.Phone,
		h.Address.Street, h.Address.City, h.Address.Province, h.Address.PostalCode, h.Address.Country,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return infra.WrapRepoErr("failed to insert hotel", err)
	}
	if !applied {
		return infra.WrapRepoErr("hotel row already present", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (s *HotelStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]hotel.Hotel, error) {
	keys := make([]gocql.UUID, len(ids))
	for i, id := range ids {
		keys[i] = gocql.UUID(id)
	}

	iter := s.session.Query(
		`SELECT id, name, phone, street, city, province, postal_code, country FROM hotels WHERE id IN ?`,
		keys,
	).WithContext(ctx).Iter()

	var (
		hotels []hotel.Hotel
		id     gocql.UUID
		h      hotel.Hotel
	)
	for iter.Scan(&id, &h.Name, &h.Phone,
		&h.Address.Street, &h.Address.City, &h.Address.Province, &h.Address.PostalCode, &h.Address.Country) {
		h.ID = uuid.UUID(id)
		hotels = append(hotels, h)
		h = hotel.Hotel{}
	}
	if err := iter.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to load hotels by ids", err)
	}
	return hotels, nil
}

type HotelByCityStore struct {
	session *gocql.Session
}

func NewHotelByCityStore(session *gocql.Session) *HotelByCityStore {
	return &HotelByCityStore{session: session}
}

func (s *HotelByCityStore) Insert(ctx context.Context, row hotel.ByCity) error {
	err := s.session.Query(
		`INSERT INTO hotels_by_city (city, hotel_id) VALUES (?, ?)`,
		row.City, gocql.UUID(row.HotelID),
	).WithContext(ctx).Exec()
	if err != nil {
		return infra.WrapRepoErr("failed to insert hotel city index row", err)
	}
	return nil
}

func (s *HotelByCityStore) HotelIDsInCity(ctx context.Context, city string) ([]uuid.UUID, error) {
	iter := s.session.Query(
		`SELECT hotel_id FROM hotels_by_city WHERE city = ?`, city,
	).WithContext(ctx).Iter()

	var (
		ids []uuid.UUID
		id  gocql.UUID
	)
	for iter.Scan(&id) {
		ids = append(ids, uuid.UUID(id))
	}
	if err := iter.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel city index", err)
	}
	return ids, nil
}
