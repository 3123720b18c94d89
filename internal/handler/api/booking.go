package api

import (
	"errors"
	"net/http"

	"koskita/internal/domain/booking"
	reqdto "koskita/internal/handler/dto/request"
	resdto "koskita/internal/handler/dto/response"
	"koskita/internal/handler/httperr"
	"koskita/internal/handler/middleware"
	"koskita/internal/pkg/errs"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errs.New("authenticated identity missing from context")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func requireActor(c *gin.Context) (booking.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return booking.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return booking.Actor{}, false
	}
	return booking.Actor{ID: userID, Role: role}, true
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	cmd, err := req.ToCommand(actor.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), cmd, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrKosNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Kos not found", nil)
		case errors.Is(err, booking.ErrOwnKosBooking):
			httperr.AbortWithError(c, http.StatusForbidden, err,
				httperr.CodeForbidden, "Cannot book your own kos", nil)
		case errors.Is(err, booking.ErrCheckInInPast),
			errors.Is(err, booking.ErrInvalidCheckIn),
			errors.Is(err, booking.ErrInvalidDuration),
			errors.Is(err, booking.ErrNotesTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	message := "Booking created"
	if result.Conflict {
		message = "Selected dates are not available"
	}
	resdto.OK(c, http.StatusOK, message, resdto.FromCreateBookingResult(result))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid booking ID", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), bookingID, req.ToCommand(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Booking not found", nil)
		case errors.Is(err, commands.ErrInvalidBookingStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidation, "Unknown booking status", nil)
		case errors.Is(err, commands.ErrTransitionNotAllowed),
			errors.Is(err, booking.ErrBookingNotMutable),
			errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusForbidden, err,
				httperr.CodeForbidden, "Status transition not allowed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	resdto.OK(c, http.StatusOK, "Booking status updated", resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID, actor)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Booking retrieved", resdto.FromBookingView(view))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListForActor(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Bookings retrieved", resdto.FromBookingListItems(items))
}
