package queries

import (
	"context"

	"koskita/internal/domain/user"
	"koskita/internal/infra"
	"koskita/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrKosNotFound = errs.New("kos not found")

type KosReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*KosView, error)
	Search(ctx context.Context, filter KosSearchFilter) ([]*KosListItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*KosListItem, error)
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*KosListItem, error)
}

// SearchCache fronts the search read path. A miss or failure falls through
// to the read store.
type SearchCache interface {
	GetSearch(ctx context.Context, filter KosSearchFilter) ([]*KosListItem, bool)
	SetSearch(ctx context.Context, filter KosSearchFilter, items []*KosListItem)
}

type KosQueries interface {
	Search(ctx context.Context, filter KosSearchFilter) ([]*KosListItem, error)
	GetByID(ctx context.Context, id uuid.UUID, actorID *uuid.UUID, actorRole string) (*KosView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*KosListItem, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*KosListItem, error)
}

type kosQueriesImpl struct {
	readStore KosReadStore
	cache     SearchCache
}

func NewKosQueries(readStore KosReadStore, cache SearchCache) KosQueries {
	return &kosQueriesImpl{readStore: readStore, cache: cache}
}

func (q *kosQueriesImpl) Search(ctx context.Context, filter KosSearchFilter) ([]*KosListItem, error) {
	if !filter.Sort.IsValid() {
		filter.Sort = SortRecommended
	}

	if items, ok := q.cache.GetSearch(ctx, filter); ok {
		return items, nil
	}

	items, err := q.readStore.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	q.cache.SetSearch(ctx, filter, items)
	return items, nil
}

// GetByID returns a listing detail. Unpublished listings are visible only
// to their owner and admins; everyone else gets not found.
func (q *kosQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID *uuid.UUID, actorRole string) (*KosView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrKosNotFound
		}
		return nil, err
	}

	if !view.IsPublished {
		isOwner := actorID != nil && *actorID == view.OwnerID
		if !isOwner && actorRole != user.RoleAdmin.String() {
			return nil, ErrKosNotFound
		}
	}
	return view, nil
}

func (q *kosQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*KosListItem, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}

func (q *kosQueriesImpl) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*KosListItem, error) {
	return q.readStore.FindFavoritesByUser(ctx, userID)
}
