package queries

import (
	"context"

	"koskita/internal/domain/booking"
	"koskita/internal/domain/user"
	"koskita/internal/infra"
	"koskita/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRenter(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor booking.Actor) (*BookingView, error)
	// GetByIDSystem skips the visibility check. For internal callers that
	// already authorized the access.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForActor(ctx context.Context, actor booking.Actor) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// GetByID hides the booking's existence from actors who may not view it.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor booking.Actor) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !booking.CanView(actor, view.UserID, view.KosOwnerID) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actor booking.Actor) ([]*BookingListItem, error) {
	switch actor.Role {
	case user.RoleAdmin:
		return q.readStore.FindAll(ctx)
	case user.RoleSeller:
		return q.readStore.FindByOwner(ctx, actor.ID)
	default:
		return q.readStore.FindByRenter(ctx, actor.ID)
	}
}
