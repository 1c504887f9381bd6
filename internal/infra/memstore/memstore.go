// Package memstore is the in-process twin of the Cassandra gateways. It
// backs unit tests and the STORE_DRIVER=memory local mode, honoring the
// same contract: keyed reads, partition scans and conditional inserts.
package memstore

import (
	"context"
	"sync"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"

	"github.com/google/uuid"
)

type GuestStore struct {
	mu     sync.RWMutex
	guests map[uuid.UUID]guest.Guest
}

func NewGuestStore() *GuestStore {
	return &GuestStore{guests: make(map[uuid.UUID]guest.Guest)}
}

func (s *GuestStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.guests[id]
	return ok, nil
}

func (s *GuestStore) Insert(_ context.Context, g guest.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[g.ID]; ok {
		return infra.WrapRepoErr("guest row already present", nil, infra.KindDuplicateKey)
	}
	s.guests[g.ID] = g
	return nil
}

type HotelStore struct {
	mu     sync.RWMutex
	hotels map[uuid.UUID]hotel.Hotel
}

func NewHotelStore() *HotelStore {
	return &HotelStore{hotels: make(map[uuid.UUID]hotel.Hotel)}
}

func (s *HotelStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hotels[id]
	return ok, nil
}

func (s *HotelStore) Insert(_ context.Context, h hotel.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[h.ID]; ok {
		return infra.WrapRepoErr("hotel row already present", nil, infra.KindDuplicateKey)
	}
	s.hotels[h.ID] = h
	return nil
}

func (s *HotelStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]hotel.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := make([]hotel.Hotel, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.hotels[id]; ok {
			found = append(found, h)
		}
	}
	return found, nil
}

type HotelByCityStore struct {
	mu    sync.RWMutex
	byKey map[string]map[uuid.UUID]struct{}
	order map[string][]uuid.UUID
}

func NewHotelByCityStore() *HotelByCityStore {
	return &HotelByCityStore{
		byKey: make(map[string]map[uuid.UUID]struct{}),
		order: make(map[string][]uuid.UUID),
	}
}

func (s *HotelByCityStore) Insert(_ context.Context, row hotel.ByCity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, ok := s.byKey[row.City]
	if !ok {
		ids = make(map[uuid.UUID]struct{})
		s.byKey[row.City] = ids
	}
	if _, dup := ids[row.HotelID]; dup {
		return nil // upsert of the identical projection row
	}
	ids[row.HotelID] = struct{}{}
	s.order[row.City] = append(s.order[row.City], row.HotelID)
	return nil
}

func (s *HotelByCityStore) HotelIDsInCity(_ context.Context, city string) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.order[city]
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out, nil
}

type RoomStore struct {
	mu      sync.RWMutex
	byHotel map[uuid.UUID][]booking.Room
	present map[booking.Room]struct{}
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		byHotel: make(map[uuid.UUID][]booking.Room),
		present: make(map[booking.Room]struct{}),
	}
}

func (s *RoomStore) Exists(_ context.Context, r booking.Room) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.present[r]
	return ok, nil
}

func (s *RoomStore) Insert(_ context.Context, r booking.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.present[r]; ok {
		return infra.WrapRepoErr("room row already present", nil, infra.KindDuplicateKey)
	}
	s.present[r] = struct{}{}
	s.byHotel[r.HotelID] = append(s.byHotel[r.HotelID], r)
	return nil
}

func (s *RoomStore) FindByHotel(_ context.Context, hotelID uuid.UUID) ([]booking.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := s.byHotel[hotelID]
	out := make([]booking.Room, len(rooms))
	copy(out, rooms)
	return out, nil
}

type RoomByHotelAndDateStore struct {
	mu   sync.RWMutex
	rows map[booking.HotelDateKey]booking.RoomByHotelAndDate
}

func NewRoomByHotelAndDateStore() *RoomByHotelAndDateStore {
	return &RoomByHotelAndDateStore{rows: make(map[booking.HotelDateKey]booking.RoomByHotelAndDate)}
}

func (s *RoomByHotelAndDateStore) Get(_ context.Context, key booking.HotelDateKey) (booking.RoomByHotelAndDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[key]
	if !ok {
		return booking.RoomByHotelAndDate{}, infra.WrapRepoErr("hotel booking view row not found", nil, infra.KindNotFound)
	}
	return row, nil
}

func (s *RoomByHotelAndDateStore) Upsert(_ context.Context, row booking.RoomByHotelAndDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[keyOfHotelView(row)] = row
	return nil
}

func (s *RoomByHotelAndDateStore) FindByHotelAndDateRange(_ context.Context, hotelID uuid.UUID, start, end time.Time) ([]booking.RoomByHotelAndDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []booking.RoomByHotelAndDate
	for key, row := range s.rows {
		if key.HotelID != hotelID {
			continue
		}
		if key.Date.Before(start) || !key.Date.Before(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// Len reports the number of stored rows; used by tests to assert that
// failed bookings write nothing.
func (s *RoomByHotelAndDateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

type RoomByGuestAndDateStore struct {
	mu    sync.RWMutex
	rows  map[booking.GuestDateKey]booking.RoomByGuestAndDate
	order []booking.GuestDateKey
}

func NewRoomByGuestAndDateStore() *RoomByGuestAndDateStore {
	return &RoomByGuestAndDateStore{rows: make(map[booking.GuestDateKey]booking.RoomByGuestAndDate)}
}

func (s *RoomByGuestAndDateStore) Exists(_ context.Context, key booking.GuestDateKey) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[key]
	return ok, nil
}

func (s *RoomByGuestAndDateStore) Insert(_ context.Context, row booking.RoomByGuestAndDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyOfGuestView(row)
	if _, ok := s.rows[key]; ok {
		return infra.WrapRepoErr("guest booking view row already present", nil, infra.KindDuplicateKey)
	}
	s.rows[key] = row
	s.order = append(s.order, key)
	return nil
}

func (s *RoomByGuestAndDateStore) FindByGuestAndDate(_ context.Context, guestID uuid.UUID, date time.Time) ([]booking.RoomByGuestAndDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []booking.RoomByGuestAndDate
	for _, key := range s.order {
		if key.GuestID == guestID && key.Date.Equal(date) {
			out = append(out, s.rows[key])
		}
	}
	return out, nil
}

// Len reports the number of stored rows; used by tests to assert that
// failed bookings write nothing.
func (s *RoomByGuestAndDateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func keyOfHotelView(row booking.RoomByHotelAndDate) booking.HotelDateKey {
	return booking.HotelDateKey{
		HotelID:    row.HotelID,
		Date:       booking.NormalizeDate(row.Date),
		RoomNumber: row.RoomNumber,
	}
}

func keyOfGuestView(row booking.RoomByGuestAndDate) booking.GuestDateKey {
	return booking.GuestDateKey{
		GuestID:    row.GuestID,
		Date:       booking.NormalizeDate(row.Date),
		HotelID:    row.HotelID,
		RoomNumber: row.RoomNumber,
	}
}
