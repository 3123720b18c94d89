package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByKos(ctx context.Context, kosID uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByKos(ctx context.Context, kosID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) ListByKos(ctx context.Context, kosID uuid.UUID) ([]*ReviewView, error) {
	return q.readStore.FindByKos(ctx, kosID)
}
