package cassandra

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/infra"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

type GuestStore struct {
	session *gocql.Session
}

func NewGuestStore(session *gocql.Session) *GuestStore {
	return &GuestStore{session: session}
}

func (s *GuestStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found gocql.UUID
	err := s.session.Query(`SELECT id FROM guests WHERE id = ?`, gocql.UUID(id)).
		WithContext(ctx).Scan(&found)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check guest existence", err)
	}
	return true, nil
}

func (s *GuestStore) Insert(ctx context.Context, g guest.Guest) error {
	applied, err := s.session.Query(
		`INSERT INTO guests (id, first_name, last_name) VALUES (?, ?, ?) IF NOT EXISTS`,
		gocql.UUID(g.ID), g.FirstName, g.LastName,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return infra.WrapRepoErr("failed to insert guest", err)
	}
	if !applied {
		return infra.WrapRepoErr("guest row already present", nil, infra.KindDuplicateKey)
	}
	return nil
}
