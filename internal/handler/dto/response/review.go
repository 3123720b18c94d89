package response

import (
	"time"

	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	KosID     uuid.UUID `json:"kosId"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	BookingID uuid.UUID `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewViews(rms []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(rms))
	for _, rm := range rms {
		var resp ReviewResponse
		_ = copier.Copy(&resp, rm)
		result = append(result, &resp)
	}
	return result
}
