//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestKos(t *testing.T, db DBLike, ownerID uuid.UUID, name string, monthlyPrice int64) uuid.UUID {
	t.Helper()

	kosID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO kos (id, owner_id, name, address, city, description, monthly_price, room_total, gender_policy, is_published)
		 VALUES ($1, $2, $3, 'Jl. Test No. 1', 'Jakarta', 'Test listing', $4, 10, 'any', true)`,
		kosID, ownerID, name, monthlyPrice)
	require.NoError(t, err)

	return kosID
}

func CreateTestBooking(t *testing.T, db DBLike, kosID, userID uuid.UUID, checkIn time.Time, months int, totalPrice int64, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	checkOut := checkIn.AddDate(0, months, 0)
	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, kos_id, user_id, check_in, check_out, duration_months, total_price, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, kosID, userID, checkIn, checkOut, months, totalPrice, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReview(t *testing.T, db DBLike, kosID, userID, bookingID uuid.UUID, rating int, comment string) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO reviews (id, kos_id, user_id, booking_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reviewID, kosID, userID, bookingID, rating, comment)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
