package commands

import (
	"context"

	"koskita/internal/domain/kos"
	"koskita/internal/domain/user"
	"koskita/internal/infra"
	"koskita/internal/pkg/errs"
	"koskita/internal/usecase/queries"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrKosNotOwned    = errs.New("kos not owned by actor")
	ErrPhotoNotFound  = errs.New("photo not found")
	ErrKosWriteFailed = errs.New("kos write failed")
)

type CreateKosRequest struct {
	Name         string
	Address      string
	City         string
	Description  string
	MonthlyPrice int64
	RoomTotal    int
	GenderPolicy string
}

type UpdateKosRequest struct {
	Name         *string
	Address      *string
	City         *string
	Description  *string
	MonthlyPrice *int64
	RoomTotal    *int
	GenderPolicy *string
}

type AddPhotoRequest struct {
	URL      string
	Caption  string
	Position int
}

type KosCommands interface {
	CreateKos(ctx context.Context, req CreateKosRequest, ownerID uuid.UUID) (*queries.KosView, error)
	UpdateKos(ctx context.Context, kosID uuid.UUID, req UpdateKosRequest, actorID uuid.UUID, actorRole string) (*queries.KosView, error)
	UnpublishKos(ctx context.Context, kosID uuid.UUID, actorID uuid.UUID, actorRole string) error
	AddPhoto(ctx context.Context, kosID uuid.UUID, req AddPhotoRequest, actorID uuid.UUID, actorRole string) (uuid.UUID, error)
	RemovePhoto(ctx context.Context, kosID, photoID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

// KosCacheInvalidator drops cached search pages after listing writes.
type KosCacheInvalidator interface {
	InvalidateSearch(ctx context.Context)
}

type kosUseCaseImpl struct {
	uow        shared.UnitOfWork
	kosQueries queries.KosQueries
	cache      KosCacheInvalidator
}

func NewKosUseCase(uow shared.UnitOfWork, kosQueries queries.KosQueries, cache KosCacheInvalidator) KosCommands {
	return &kosUseCaseImpl{uow: uow, kosQueries: kosQueries, cache: cache}
}

func (uc *kosUseCaseImpl) CreateKos(ctx context.Context, req CreateKosRequest, ownerID uuid.UUID) (*queries.KosView, error) {
	name, err := kos.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	price, err := kos.NewMonthlyPrice(req.MonthlyPrice)
	if err != nil {
		return nil, err
	}
	policy, err := kos.NewGenderPolicy(req.GenderPolicy)
	if err != nil {
		return nil, err
	}

	k, err := kos.NewKos(ownerID, name, req.Address, req.City, req.Description, price, req.RoomTotal, policy)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Kos().Create(ctx, tx.DB(), k)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateSearch(ctx)
	return uc.kosQueries.GetByID(ctx, createdID, &ownerID, "")
}

// UpdateKos applies a partial update. A price change never touches
// already-created bookings; their total was fixed at booking time.
func (uc *kosUseCaseImpl) UpdateKos(ctx context.Context, kosID uuid.UUID, req UpdateKosRequest, actorID uuid.UUID, actorRole string) (*queries.KosView, error) {
	if req.MonthlyPrice != nil {
		if _, err := kos.NewMonthlyPrice(*req.MonthlyPrice); err != nil {
			return nil, err
		}
	}
	if req.Name != nil {
		if _, err := kos.NewName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.GenderPolicy != nil {
		if _, err := kos.NewGenderPolicy(*req.GenderPolicy); err != nil {
			return nil, err
		}
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.authorizeOwner(ctx, tx, kosID, actorID, actorRole); derr != nil {
			return derr
		}
		params := shared.UpdateKosParams{
			Name:         req.Name,
			Address:      req.Address,
			City:         req.City,
			Description:  req.Description,
			MonthlyPrice: req.MonthlyPrice,
			RoomTotal:    req.RoomTotal,
			GenderPolicy: req.GenderPolicy,
		}
		return tx.Kos().Update(ctx, tx.DB(), kosID, params)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateSearch(ctx)
	return uc.kosQueries.GetByID(ctx, kosID, &actorID, actorRole)
}

// UnpublishKos is the soft delete: the listing disappears from search and
// detail but its bookings and reviews remain.
func (uc *kosUseCaseImpl) UnpublishKos(ctx context.Context, kosID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.authorizeOwner(ctx, tx, kosID, actorID, actorRole); derr != nil {
			return derr
		}
		return tx.Kos().SetPublished(ctx, tx.DB(), kosID, false)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateSearch(ctx)
	return nil
}

func (uc *kosUseCaseImpl) AddPhoto(ctx context.Context, kosID uuid.UUID, req AddPhotoRequest, actorID uuid.UUID, actorRole string) (uuid.UUID, error) {
	photo, err := kos.NewPhoto(req.URL, req.Caption, req.Position)
	if err != nil {
		return uuid.Nil, err
	}

	var photoID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.authorizeOwner(ctx, tx, kosID, actorID, actorRole); derr != nil {
			return derr
		}
		id, derr := tx.Kos().AddPhoto(ctx, tx.DB(), kosID, photo)
		if derr != nil {
			return derr
		}
		photoID = id
		return nil
	})
	return photoID, err
}

func (uc *kosUseCaseImpl) RemovePhoto(ctx context.Context, kosID, photoID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.authorizeOwner(ctx, tx, kosID, actorID, actorRole); derr != nil {
			return derr
		}
		derr := tx.Kos().RemovePhoto(ctx, tx.DB(), kosID, photoID)
		if infra.IsKind(derr, infra.KindNotFound) {
			return ErrPhotoNotFound
		}
		return derr
	})
}

func (uc *kosUseCaseImpl) authorizeOwner(ctx context.Context, tx shared.Tx, kosID, actorID uuid.UUID, actorRole string) error {
	snap, err := tx.Reads().KosByID(ctx, kosID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrKosNotFound
		}
		return err
	}
	if actorRole != user.RoleAdmin.String() && snap.OwnerID != actorID {
		return ErrKosNotOwned
	}
	return nil
}
