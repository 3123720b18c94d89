//go:build unit || e2e

package builder

import (
	"time"

	"koskita/internal/domain/booking"
	"koskita/internal/domain/kos"
	reqdto "koskita/internal/handler/dto/request"
	"koskita/internal/pkg/clock"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	KosID        uuid.UUID
	KosName      string
	KosOwnerID   uuid.UUID
	UserID       uuid.UUID
	UserEmail    string
	CheckIn      time.Time
	Duration     int
	MonthlyPrice int64
	Status       string
	Notes        string
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:           uuid.New(),
		KosID:        uuid.New(),
		KosName:      "Kos Melati",
		KosOwnerID:   uuid.New(),
		UserID:       uuid.New(),
		UserEmail:    "renter@example.com",
		CheckIn:      now.AddDate(0, 0, 9),
		Duration:     2,
		MonthlyPrice: 1_500_000,
		Status:       "pending",
		Notes:        "",
		Now:          now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCheckIn(checkIn time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	return b
}

func (b *BookingBuilder) WithDuration(months int) *BookingBuilder {
	b.Duration = months
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.KosOwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.CheckIn, b.Duration)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(b.Notes)
	if err != nil {
		return nil, err
	}
	price, err := kos.NewMonthlyPrice(b.MonthlyPrice)
	if err != nil {
		return nil, err
	}

	services := &booking.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: booking.NewMonthlyRateCalculator(),
	}
	spec := booking.KosSpec{
		ID:           b.KosID,
		OwnerID:      b.KosOwnerID,
		MonthlyPrice: price,
	}
	return booking.NewBooking(services, spec, b.UserID, period, notes)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var notes *string
	if b.Notes != "" {
		notes = &b.Notes
	}
	return reqdto.CreateBookingRequest{
		KosID:       b.KosID,
		CheckInDate: b.CheckIn.Format("2006-01-02"),
		Duration:    b.Duration,
		Notes:       notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var notes *string
	if b.Notes != "" {
		notes = &b.Notes
	}
	checkIn := truncate(b.CheckIn)
	return &queries.BookingView{
		ID:         b.ID,
		KosID:      b.KosID,
		KosName:    b.KosName,
		KosOwnerID: b.KosOwnerID,
		UserID:     b.UserID,
		UserEmail:  b.UserEmail,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, b.Duration, 0),
		Duration:   b.Duration,
		TotalPrice: b.MonthlyPrice * int64(b.Duration),
		Status:     b.Status,
		Notes:      notes,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	checkIn := truncate(b.CheckIn)
	return &queries.BookingListItem{
		ID:         b.ID,
		KosID:      b.KosID,
		KosName:    b.KosName,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, b.Duration, 0),
		Duration:   b.Duration,
		TotalPrice: b.MonthlyPrice * int64(b.Duration),
		Status:     b.Status,
		CreatedAt:  b.Now,
	}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
