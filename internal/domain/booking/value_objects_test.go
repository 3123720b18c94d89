//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"koskita/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("check-out is check-in plus whole calendar months", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 3, 10), 2)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), p.CheckIn())
		assert.Equal(t, date(2026, 5, 10), p.CheckOut())
		assert.Equal(t, 2, p.Months())
	})

	t.Run("time of day is truncated to the date", func(t *testing.T) {
		p, err := booking.NewStayPeriod(time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), 1)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), p.CheckIn())
	})

	t.Run("month-end rollover follows calendar arithmetic", func(t *testing.T) {
		// Jan 31 + 1 month normalizes to Mar 3 in a non-leap year.
		p, err := booking.NewStayPeriod(date(2025, 1, 31), 1)
		require.NoError(t, err)

		assert.Equal(t, date(2025, 3, 3), p.CheckOut())
	})

	t.Run("duration bounds", func(t *testing.T) {
		cases := []struct {
			name   string
			months int
			errIs  error
		}{
			{name: "zero months", months: 0, errIs: booking.ErrInvalidDuration},
			{name: "negative months", months: -1, errIs: booking.ErrInvalidDuration},
			{name: "minimum", months: booking.MinDurationMonths},
			{name: "maximum", months: booking.MaxDurationMonths},
			{name: "above maximum", months: booking.MaxDurationMonths + 1, errIs: booking.ErrInvalidDuration},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.NewStayPeriod(date(2026, 4, 1), c.months)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("zero check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(time.Time{}, 1)
		require.ErrorIs(t, err, booking.ErrInvalidCheckIn)
	})
}

func TestStayPeriodValidateNotPastAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)

	t.Run("yesterday is rejected", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 3, 14), 1)
		require.NoError(t, err)
		require.ErrorIs(t, p.ValidateNotPastAt(now), booking.ErrCheckInInPast)
	})

	t.Run("today is allowed even late in the day", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 3, 15), 1)
		require.NoError(t, err)
		require.NoError(t, p.ValidateNotPastAt(now))
	})

	t.Run("future date is allowed", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 6, 1), 1)
		require.NoError(t, err)
		require.NoError(t, p.ValidateNotPastAt(now))
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	mustPeriod := func(checkIn time.Time, months int) booking.StayPeriod {
		p, err := booking.NewStayPeriod(checkIn, months)
		require.NoError(t, err)
		return p
	}

	base := mustPeriod(date(2026, 3, 1), 2) // [Mar 1, May 1)

	cases := []struct {
		name     string
		other    booking.StayPeriod
		overlaps bool
	}{
		{name: "identical range", other: mustPeriod(date(2026, 3, 1), 2), overlaps: true},
		{name: "contained range", other: mustPeriod(date(2026, 3, 15), 1), overlaps: true},
		{name: "partial overlap at start", other: mustPeriod(date(2026, 2, 15), 1), overlaps: true},
		{name: "partial overlap at end", other: mustPeriod(date(2026, 4, 20), 1), overlaps: true},
		{name: "back-to-back after check-out", other: mustPeriod(date(2026, 5, 1), 1), overlaps: false},
		{name: "back-to-back before check-in", other: mustPeriod(date(2026, 2, 1), 1), overlaps: false},
		{name: "fully disjoint", other: mustPeriod(date(2026, 8, 1), 1), overlaps: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestNewNotes(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := booking.NewNotes("  near the window please  ")
		require.NoError(t, err)
		assert.Equal(t, "near the window please", n.String())
	})

	t.Run("empty notes are allowed", func(t *testing.T) {
		n, err := booking.NewNotes("")
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := booking.NewNotes(strings.Repeat("a", booking.MaxNotesLength))
		require.NoError(t, err)

		_, err = booking.NewNotes(strings.Repeat("a", booking.MaxNotesLength+1))
		require.ErrorIs(t, err, booking.ErrNotesTooLong)
	})
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("archived")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
