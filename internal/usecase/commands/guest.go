package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

type GuestCommands interface {
	// RegisterGuest stores a new guest, enforcing identity uniqueness.
	RegisterGuest(ctx context.Context, g guest.Guest) (guest.Guest, error)
}

type guestCommandsImpl struct {
	guests GuestGateway
}

func NewGuestCommands(guests GuestGateway) GuestCommands {
	return &guestCommandsImpl{guests: guests}
}

func (c *guestCommandsImpl) RegisterGuest(ctx context.Context, g guest.Guest) (guest.Guest, error) {
	validated, err := validate.For(g).
		Require(func(g guest.Guest) bool { return g.ID != uuid.Nil },
			func() error { return errs.InvalidInputf("cannot register guest info with empty id") }).
		Require(func(g guest.Guest) bool { return g.FirstName != "" },
			func() error { return errs.InvalidInputf("cannot register guest info with empty first name") }).
		Require(func(g guest.Guest) bool { return g.LastName != "" },
			func() error { return errs.InvalidInputf("cannot register guest info with empty last name") }).
		RequireFrom(c.notYetRegistered(ctx),
			func() error { return errs.AlreadyExistsf("the guest information is already stored, %s", g) }).
		Result()
	if err != nil {
		return guest.Guest{}, err
	}

	if err := c.guests.Insert(ctx, validated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return guest.Guest{}, errs.AlreadyExistsf("the guest information is already stored, %s", validated)
		}
		return guest.Guest{}, errs.Wrap(err, "failed to insert guest")
	}

	slog.Info("successfully registered the new guest", "guest_id", validated.ID)
	return validated, nil
}

func (c *guestCommandsImpl) notYetRegistered(ctx context.Context) func(guest.Guest) (bool, error) {
	return func(g guest.Guest) (bool, error) {
		exists, err := c.guests.Exists(ctx, g.ID)
		if err != nil {
			return false, errs.Wrap(err, "failed to check guest existence")
		}
		return !exists, nil
	}
}
