package response

import (
	"time"

	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	KosID      uuid.UUID `json:"kosId"`
	KosName    string    `json:"kosName"`
	UserID     uuid.UUID `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	CheckIn    string    `json:"checkInDate"`
	CheckOut   string    `json:"checkOutDate"`
	Duration   int       `json:"duration"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	KosID      uuid.UUID `json:"kosId"`
	KosName    string    `json:"kosName"`
	CheckIn    string    `json:"checkInDate"`
	CheckOut   string    `json:"checkOutDate"`
	Duration   int       `json:"duration"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AvailabilityResponse is the payload of the booking create endpoint. A date
// conflict is reported here as a successful outcome, not as an error.
type AvailabilityResponse struct {
	Available bool             `json:"available"`
	Conflict  bool             `json:"conflict"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

const bookingDateLayout = "2006-01-02"

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.CheckIn = rm.CheckIn.Format(bookingDateLayout)
	resp.CheckOut = rm.CheckOut.Format(bookingDateLayout)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	resp.CheckIn = rm.CheckIn.Format(bookingDateLayout)
	resp.CheckOut = rm.CheckOut.Format(bookingDateLayout)
	return &resp
}

func FromBookingListItems(rms []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromBookingListItem(rm))
	}
	return result
}

func FromCreateBookingResult(res *commands.CreateBookingResult) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available: res.Available,
		Conflict:  res.Conflict,
	}
	if res.Booking != nil {
		resp.Booking = FromBookingView(res.Booking)
	}
	return resp
}
