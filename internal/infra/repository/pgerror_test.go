//go:build unit

package repository

import (
	"testing"

	"koskita/internal/infra"
	"koskita/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPgErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "unique violation maps to duplicate key",
			err:        &pgconn.PgError{Code: "23505"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation maps to foreign key kind",
			err:        &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "exclusion violation maps to conflict",
			err:        &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "other postgres errors map to db failure",
			err:        &pgconn.PgError{Code: "57014"},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "non-postgres errors map to db failure",
			err:        errs.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapPgErr("query failed", tc.err)
			assert.True(t, infra.IsKind(wrapped, tc.expectKind))
		})
	}
}

func TestWrapPgErrWrappedCause(t *testing.T) {
	// Classification must survive wrapping by intermediate layers.
	cause := errs.Wrap(&pgconn.PgError{Code: "23P01"}, "insert booking")
	assert.True(t, infra.IsKind(wrapPgErr("query failed", cause), infra.KindConflict))
}
