package commands

import (
	"context"

	"koskita/internal/domain/booking"
	domreview "koskita/internal/domain/review"
	"koskita/internal/domain/user"
	"koskita/internal/infra"
	"koskita/internal/pkg/clock"
	"koskita/internal/pkg/errs"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFoundWrite = errs.New("review not found")
	ErrReviewNotOwned      = errs.New("review not owned by actor")
)

type CreateReviewRequest struct {
	KosID     uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache KosCacheInvalidator
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, cache KosCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

// CreateReview requires a completed booking by the reviewer on the listing,
// one review per booking. The rating stats recalc happens in the same
// transaction so the listing's aggregate never lags its reviews.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return domreview.ErrBookingNotEligible
			}
			return derr
		}
		if snap.UserID != userID || snap.KosID != req.KosID {
			return domreview.ErrBookingNotEligible
		}
		if snap.Status != booking.StatusCompleted.String() {
			return domreview.ErrBookingNotEligible
		}

		exists, derr := tx.Reads().ReviewExistsForBooking(ctx, req.BookingID)
		if derr != nil {
			return derr
		}
		if exists {
			return domreview.ErrReviewAlreadyExists
		}

		rev := domreview.NewReview(uuid.Nil, req.KosID, userID, req.BookingID, rating, comment, uc.clock.Now())
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return domreview.ErrReviewAlreadyExists
			}
			return derr
		}
		createdID = id
		return tx.RatingStats().RecalcKosRatingStats(ctx, tx.DB(), req.KosID)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateSearch(ctx)
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if derr = tx.Reviews().Update(ctx, tx.DB(), reviewID, rating.Value(), comment.String()); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcKosRatingStats(ctx, tx.DB(), snap.KosID)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateSearch(ctx)
	return nil
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if actorRole != user.RoleAdmin.String() && snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcKosRatingStats(ctx, tx.DB(), snap.KosID)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateSearch(ctx)
	return nil
}
