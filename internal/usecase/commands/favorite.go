package commands

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	AddFavorite(ctx context.Context, userID, kosID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, kosID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteUseCase(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteUseCaseImpl{uow: uow}
}

// AddFavorite is idempotent; favoriting twice is a success.
func (uc *favoriteUseCaseImpl) AddFavorite(ctx context.Context, userID, kosID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().KosByID(ctx, kosID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrKosNotFound
			}
			return err
		}
		if !snap.IsPublished {
			return ErrKosNotFound
		}
		return tx.Favorites().Add(ctx, tx.DB(), userID, kosID)
	})
}

// RemoveFavorite succeeds whether or not the favorite existed.
func (uc *favoriteUseCaseImpl) RemoveFavorite(ctx context.Context, userID, kosID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, tx.DB(), userID, kosID)
	})
}
