package booking

import (
	"errors"

	"koskita/internal/domain/user"

	"github.com/google/uuid"
)

var ErrActorNotAllowed = errors.New("actor is not allowed to perform this transition")

// Actor is the authenticated principal attempting a booking operation.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// AuthorizeTransition decides whether the actor may move a booking to the
// target status. Renters may only cancel their own pending or confirmed
// booking; the listing owner and admins may confirm, complete, or cancel
// bookings on the listing. The role switch is exhaustive on purpose.
func AuthorizeTransition(actor Actor, bookingUserID, kosOwnerID uuid.UUID, current, target Status) error {
	switch actor.Role {
	case user.RoleAdmin:
		return nil

	case user.RoleSeller:
		if actor.ID != kosOwnerID {
			return ErrActorNotAllowed
		}
		return nil

	case user.RoleRenter:
		if actor.ID != bookingUserID {
			return ErrActorNotAllowed
		}
		if target != StatusCancelled {
			return ErrActorNotAllowed
		}
		if current != StatusPending && current != StatusConfirmed && current != StatusCancelled {
			return ErrActorNotAllowed
		}
		return nil

	default:
		return ErrActorNotAllowed
	}
}

// CanView reports whether the actor may read a booking: the renter who made
// it, the owner of the listing it targets, or an admin.
func CanView(actor Actor, bookingUserID, kosOwnerID uuid.UUID) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleSeller:
		return actor.ID == kosOwnerID || actor.ID == bookingUserID
	case user.RoleRenter:
		return actor.ID == bookingUserID
	default:
		return false
	}
}
