package request

import (
	"strings"
	"time"

	"koskita/internal/pkg/errs"
	"koskita/internal/usecase/commands"

	"github.com/google/uuid"
)

const checkInDateLayout = "2006-01-02"

var ErrInvalidCheckInDate = errs.New("checkInDate must be formatted as YYYY-MM-DD")

type CreateBookingRequest struct {
	KosID       uuid.UUID `json:"kosId" binding:"required"`
	CheckInDate string    `json:"checkInDate" binding:"required"`
	Duration    int       `json:"duration" binding:"required,min=1,max=12"`
	Notes       *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToCommand(userID uuid.UUID) (commands.CreateBookingRequest, error) {
	checkIn, err := time.Parse(checkInDateLayout, r.CheckInDate)
	if err != nil {
		return commands.CreateBookingRequest{}, ErrInvalidCheckInDate
	}

	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}

	return commands.CreateBookingRequest{
		KosID:    r.KosID,
		CheckIn:  checkIn,
		Duration: r.Duration,
		Notes:    notes,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (r UpdateBookingStatusRequest) ToCommand() commands.UpdateBookingStatusRequest {
	return commands.UpdateBookingStatusRequest{
		Status: strings.ToLower(strings.TrimSpace(r.Status)),
		Notes:  r.Notes,
	}
}
