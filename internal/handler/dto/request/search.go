package request

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookedRoomsRequest struct {
	Date string `form:"date"`
}

// ParsedDate returns the zero time for an absent parameter so the lookup
// service reports the missing date itself.
func (r BookedRoomsRequest) ParsedDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, nil
	}
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return time.Time{}, errs.InvalidInputf("invalid booking date '%s', expected YYYY-MM-DD", r.Date)
	}
	return date, nil
}

// Gin's query binding cannot populate a uuid.UUID field, so the hotel id
// arrives as a string and is parsed explicitly.
type FreeRoomsRequest struct {
	HotelID string `form:"hotel_id"`
	Start   string `form:"start"`
	End     string `form:"end"`
}

// ParsedHotelID returns the nil uuid for an absent parameter so the search
// service reports the missing hotel id itself.
func (r FreeRoomsRequest) ParsedHotelID() (uuid.UUID, error) {
	if r.HotelID == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(r.HotelID)
	if err != nil {
		return uuid.Nil, errs.InvalidInputf("invalid hotel id '%s'", r.HotelID)
	}
	return id, nil
}

func (r FreeRoomsRequest) ParsedRange() (start, end time.Time, err error) {
	if r.Start == "" && r.End == "" {
		return time.Time{}, time.Time{}, nil
	}
	if start, err = booking.ParseDate(r.Start); err != nil {
		return time.Time{}, time.Time{}, errs.InvalidInputf("invalid search start date '%s', expected YYYY-MM-DD", r.Start)
	}
	if end, err = booking.ParseDate(r.End); err != nil {
		return time.Time{}, time.Time{}, errs.InvalidInputf("invalid search end date '%s', expected YYYY-MM-DD", r.End)
	}
	return start, end, nil
}
