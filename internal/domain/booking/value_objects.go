package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDuration  = errors.New("duration must be between 1 and 12 months")
	ErrCheckInInPast    = errors.New("check-in date cannot be in the past")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNotesTooLong     = errors.New("notes exceed maximum length")
	ErrInvalidCheckIn   = errors.New("invalid check-in date")
)

const (
	MinDurationMonths = 1
	MaxDurationMonths = 12
	MaxNotesLength    = 500
)

// StayPeriod is a half-open [checkIn, checkOut) date range. Check-out is
// always check-in plus a whole number of calendar months; there are no
// partial months.
type StayPeriod struct {
	checkIn time.Time
	months  int
}

func NewStayPeriod(checkIn time.Time, months int) (StayPeriod, error) {
	if checkIn.IsZero() {
		return StayPeriod{}, ErrInvalidCheckIn
	}
	if months < MinDurationMonths || months > MaxDurationMonths {
		return StayPeriod{}, ErrInvalidDuration
	}
	return StayPeriod{checkIn: truncateToDate(checkIn), months: months}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkIn.AddDate(0, p.months, 0)
}

func (p StayPeriod) Months() int {
	return p.months
}

// ValidateNotPastAt rejects check-in dates strictly before the current date.
// Comparison is at date precision, so booking for today is allowed.
func (p StayPeriod) ValidateNotPastAt(now time.Time) error {
	if p.checkIn.Before(truncateToDate(now)) {
		return ErrCheckInInPast
	}
	return nil
}

// Overlaps is the half-open interval test: back-to-back stays where one
// checks out the day the other checks in do not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.CheckOut()) && other.checkIn.Before(p.CheckOut())
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: value}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
