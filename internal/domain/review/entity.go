package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingNotEligible  = errors.New("booking is not eligible for review")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
)

// A review is tied to the completed booking that earned the renter the right
// to post it; one review per booking.
type Review struct {
	id        uuid.UUID
	kosID     uuid.UUID
	userID    uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, kosID, userID, bookingID uuid.UUID, rating Rating, comment Comment, now time.Time) *Review {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Review{
		id:        id,
		kosID:     kosID,
		userID:    userID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) KosID() uuid.UUID     { return r.kosID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
