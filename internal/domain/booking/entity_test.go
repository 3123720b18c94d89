//go:build unit

package booking_test

import (
	"testing"

	"koskita/internal/domain/booking"
	"koskita/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("total price is monthly rate times duration", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithDuration(2)
		bb.MonthlyPrice = 500_000

		b, err := bb.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), b.TotalPrice())
	})

	t.Run("price is snapshotted per booking", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithDuration(3)
		bb.MonthlyPrice = 1_200_000

		b, err := bb.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(3_600_000), b.TotalPrice())
	})

	t.Run("owner cannot book their own listing", func(t *testing.T) {
		ownerID := uuid.New()
		_, err := builder.NewBookingBuilder().
			WithOwnerID(ownerID).
			WithUserID(ownerID).
			BuildDomain()
		require.ErrorIs(t, err, booking.ErrOwnKosBooking)
	})

	t.Run("past check-in is rejected", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.CheckIn = bb.Now.AddDate(0, 0, -1)
		_, err := bb.BuildDomain()
		require.ErrorIs(t, err, booking.ErrCheckInInPast)
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.CheckIn = bb.Now
		b, err := bb.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)
	})
}

func TestBookingTransitionTo(t *testing.T) {
	buildWithStatus := func(t *testing.T, status booking.Status) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		if status != booking.StatusPending {
			require.NoError(t, forceStatus(b, status))
		}
		return b
	}

	t.Run("allowed edges", func(t *testing.T) {
		cases := []struct {
			name string
			from booking.Status
			to   booking.Status
		}{
			{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed},
			{name: "pending to cancelled", from: booking.StatusPending, to: booking.StatusCancelled},
			{name: "confirmed to completed", from: booking.StatusConfirmed, to: booking.StatusCompleted},
			{name: "confirmed to cancelled", from: booking.StatusConfirmed, to: booking.StatusCancelled},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := buildWithStatus(t, c.from)
				require.NoError(t, b.TransitionTo(c.to))
				assert.Equal(t, c.to, b.Status())
			})
		}
	})

	t.Run("re-applying the current status is a no-op", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.StatusPending,
			booking.StatusConfirmed,
			booking.StatusCancelled,
			booking.StatusCompleted,
		} {
			b := buildWithStatus(t, s)
			require.NoError(t, b.TransitionTo(s))
			assert.Equal(t, s, b.Status())
		}
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		cancelled := buildWithStatus(t, booking.StatusCancelled)
		require.ErrorIs(t, cancelled.TransitionTo(booking.StatusConfirmed), booking.ErrBookingNotMutable)

		completed := buildWithStatus(t, booking.StatusCompleted)
		require.ErrorIs(t, completed.TransitionTo(booking.StatusCancelled), booking.ErrBookingNotMutable)
	})

	t.Run("skipping confirmed is rejected", func(t *testing.T) {
		b := buildWithStatus(t, booking.StatusPending)
		require.ErrorIs(t, b.TransitionTo(booking.StatusCompleted), booking.ErrInvalidTransition)
	})

	t.Run("confirmed cannot go back to pending", func(t *testing.T) {
		b := buildWithStatus(t, booking.StatusConfirmed)
		require.ErrorIs(t, b.TransitionTo(booking.StatusPending), booking.ErrInvalidTransition)
	})
}

// forceStatus walks a booking along valid edges to reach the wanted state.
func forceStatus(b *booking.Booking, target booking.Status) error {
	switch target {
	case booking.StatusConfirmed:
		return b.TransitionTo(booking.StatusConfirmed)
	case booking.StatusCancelled:
		return b.TransitionTo(booking.StatusCancelled)
	case booking.StatusCompleted:
		if err := b.TransitionTo(booking.StatusConfirmed); err != nil {
			return err
		}
		return b.TransitionTo(booking.StatusCompleted)
	default:
		return nil
	}
}
