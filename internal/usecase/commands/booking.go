package commands

import (
	"context"
	"errors"
	"time"

	"koskita/internal/domain/booking"
	"koskita/internal/domain/kos"
	"koskita/internal/infra"
	"koskita/internal/pkg/clock"
	"koskita/internal/pkg/errs"
	"koskita/internal/usecase/queries"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrKosNotFound           = errs.New("kos not found")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrTransitionNotAllowed  = errs.New("status transition not allowed for actor")
	ErrInvalidBookingStatus  = errs.New("invalid booking status")
	ErrCorruptedListingPrice = errs.New("stored listing price is invalid")

	// errDatesUnavailable aborts the booking transaction when the requested
	// range is taken. It never escapes CreateBooking; the caller sees the
	// unavailable result instead.
	errDatesUnavailable = errs.New("requested dates are unavailable")
)

type CreateBookingRequest struct {
	KosID    uuid.UUID
	CheckIn  time.Time
	Duration int
	Notes    string
}

// CreateBookingResult reports availability alongside the created booking.
// An occupied date range is a normal outcome, not an error.
type CreateBookingResult struct {
	Available bool
	Conflict  bool
	Booking   *queries.BookingView
}

type UpdateBookingStatusRequest struct {
	Status string
	Notes  *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req UpdateBookingStatusRequest, actor booking.Actor) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// CreateBooking runs the availability check and the insert inside a single
// serializable transaction so two concurrent requests for overlapping dates
// cannot both pass the check. The exclusion constraint on bookings is the
// backstop; a constraint hit surfaces as the same conflict outcome.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	period, err := booking.NewStayPeriod(req.CheckIn, req.Duration)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	services := &booking.Services{
		Clock:           uc.clock,
		PriceCalculator: booking.NewMonthlyRateCalculator(),
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().KosByID(ctx, req.KosID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrKosNotFound
			}
			return derr
		}
		if !snap.IsPublished {
			return ErrKosNotFound
		}

		price, derr := kos.NewMonthlyPrice(snap.MonthlyPrice)
		if derr != nil {
			return errs.Mark(derr, ErrCorruptedListingPrice)
		}

		spec := booking.KosSpec{
			ID:           snap.ID,
			OwnerID:      snap.OwnerID,
			MonthlyPrice: price,
		}
		b, derr := booking.NewBooking(services, spec, userID, period, notes)
		if derr != nil {
			return derr
		}

		count, derr := tx.Bookings().CountOverlapping(ctx, tx.DB(), snap.ID, b)
		if derr != nil {
			return derr
		}
		if count > 0 {
			return errDatesUnavailable
		}

		// A racing writer can slip past the count and trip the exclusion
		// constraint instead. The transaction is aborted at that point, so
		// the conflict must propagate as an error to roll it back.
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errDatesUnavailable
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, errDatesUnavailable) {
			return &CreateBookingResult{Available: false, Conflict: true}, nil
		}
		return nil, err
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Available: true, Conflict: false, Booking: view}, nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req UpdateBookingStatusRequest, actor booking.Actor) (*queries.BookingView, error) {
	target, err := booking.NewStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingStatus)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		// Actors who cannot see the booking learn nothing about it.
		if !booking.CanView(actor, snap.UserID, snap.KosOwnerID) {
			return ErrBookingNotFound
		}
		current, derr := booking.NewStatus(snap.Status)
		if derr != nil {
			return derr
		}
		if derr = booking.AuthorizeTransition(actor, snap.UserID, snap.KosOwnerID, current, target); derr != nil {
			return errs.Mark(derr, ErrTransitionNotAllowed)
		}

		period, derr := booking.NewStayPeriod(snap.CheckIn, snap.Duration)
		if derr != nil {
			return derr
		}
		b := booking.ReconstructBooking(
			snap.ID, snap.KosID, snap.UserID, period, current, 0, booking.Notes{},
			time.Time{}, time.Time{},
		)
		if derr = b.TransitionTo(target); derr != nil {
			return derr
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, b.Status(), req.Notes)
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByIDSystem(ctx, bookingID)
}
