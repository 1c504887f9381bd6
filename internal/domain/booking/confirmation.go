package booking

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ConfirmationNumber derives the confirmation identifier from the request
// field values. It is deterministic by construction: two requests with
// identical fields receive the same number. There is no added uniqueness
// source; the booking keys themselves guard against duplicates.
func ConfirmationNumber(r Request) string {
	canonical := fmt.Sprintf("%s|%s|%d|%s", r.GuestID, r.HotelID, r.RoomNumber, FormatDate(NormalizeDate(r.Date)))
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}
