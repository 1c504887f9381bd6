package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Request is the inbound reservation order. It is never persisted itself;
// only the two derived view rows are.
type Request struct {
	GuestID    uuid.UUID
	HotelID    uuid.UUID
	RoomNumber int
	Date       time.Time
}

func (r Request) String() string {
	return fmt.Sprintf("booking of room '%d' in hotel '%s' on '%s' for guest '%s'",
		r.RoomNumber, r.HotelID, FormatDate(r.Date), r.GuestID)
}

// Room is one bookable inventory unit, keyed (hotel id, room number).
type Room struct {
	HotelID    uuid.UUID
	RoomNumber int
}

func (r Room) String() string {
	return fmt.Sprintf("room '%d' in hotel '%s'", r.RoomNumber, r.HotelID)
}

// RoomByHotelAndDate is the booking-by-hotel view row. Its presence for
// (hotel id, date, room number) is the source of truth for "is this room
// taken on this date".
type RoomByHotelAndDate struct {
	HotelID    uuid.UUID
	Date       time.Time
	RoomNumber int
}

// RoomByGuestAndDate is the booking-by-guest view row, keyed
// (guest id, date, hotel id, room number). Carries the confirmation number.
type RoomByGuestAndDate struct {
	GuestID            uuid.UUID
	Date               time.Time
	HotelID            uuid.UUID
	RoomNumber         int
	ConfirmationNumber string
}

// HotelDateKey is the composite key of the booking-by-hotel view.
type HotelDateKey struct {
	HotelID    uuid.UUID
	Date       time.Time
	RoomNumber int
}

// GuestDateKey is the composite key of the booking-by-guest view.
type GuestDateKey struct {
	GuestID    uuid.UUID
	Date       time.Time
	HotelID    uuid.UUID
	RoomNumber int
}

const dateLayout = "2006-01-02"

// NormalizeDate strips the time-of-day component; booking keys are calendar
// dates, not instants.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func (r Request) HotelDateKey() HotelDateKey {
	return HotelDateKey{
		HotelID:    r.HotelID,
		Date:       NormalizeDate(r.Date),
		RoomNumber: r.RoomNumber,
	}
}

func (r Request) GuestDateKey() GuestDateKey {
	return GuestDateKey{
		GuestID:    r.GuestID,
		Date:       NormalizeDate(r.Date),
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
	}
}

// HotelViewFromRequest derives the by-hotel view row for the request.
func HotelViewFromRequest(r Request) RoomByHotelAndDate {
	return RoomByHotelAndDate{
		HotelID:    r.HotelID,
		Date:       NormalizeDate(r.Date),
		RoomNumber: r.RoomNumber,
	}
}

// GuestViewFromRequest derives the by-guest view row carrying the
// confirmation number.
func GuestViewFromRequest(r Request, confirmationNumber string) RoomByGuestAndDate {
	return RoomByGuestAndDate{
		GuestID:            r.GuestID,
		Date:               NormalizeDate(r.Date),
		HotelID:            r.HotelID,
		RoomNumber:         r.RoomNumber,
		ConfirmationNumber: confirmationNumber,
	}
}

// ProjectToHotelView maps a by-guest row into the by-hotel shape; the
// confirmation metadata is dropped by the field-name copy.
func ProjectToHotelView(row RoomByGuestAndDate) RoomByHotelAndDate {
	var projected RoomByHotelAndDate
	_ = copier.Copy(&projected, &row)
	return projected
}
