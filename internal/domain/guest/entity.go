package guest

import (
	"fmt"

	"github.com/google/uuid"
)

// Guest is the registry row for one registered guest. Created once via
// registration and immutable afterwards; the registry is the sole writer.
type Guest struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

func (g Guest) String() string {
	return fmt.Sprintf("guest id '%s', name '%s', surname '%s'", g.ID, g.FirstName, g.LastName)
}
