package api

import (
	"errors"
	"net/http"

	domreview "koskita/internal/domain/review"
	reqdto "koskita/internal/handler/dto/request"
	resdto "koskita/internal/handler/dto/response"
	"koskita/internal/handler/httperr"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

func (h *ReviewHandler) abortReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domreview.ErrBookingNotEligible):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			httperr.CodeForbidden, "No completed booking on this kos", nil)
	case errors.Is(err, domreview.ErrReviewAlreadyExists):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			httperr.CodeForbidden, "Booking already reviewed", nil)
	case errors.Is(err, commands.ErrReviewNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeNotFound, "Review not found", nil)
	case errors.Is(err, commands.ErrReviewNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			httperr.CodeForbidden, "Not the author of this review", nil)
	case errors.Is(err, domreview.ErrInvalidRating),
		errors.Is(err, domreview.ErrEmptyComment),
		errors.Is(err, domreview.ErrCommentTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	kosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid kos ID", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), req.ToCommand(kosID), actor.ID)
	if err != nil {
		h.abortReviewError(c, err)
		return
	}

	resdto.OK(c, http.StatusCreated, "Review created", gin.H{"reviewId": result.ReviewID})
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid review ID", nil)
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	if err := h.reviewCommands.UpdateReview(c.Request.Context(), reviewID, req.ToCommand(), actor.ID); err != nil {
		h.abortReviewError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Review updated", nil)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid review ID", nil)
		return
	}

	if err := h.reviewCommands.DeleteReview(c.Request.Context(), reviewID, actor.ID, actor.Role.String()); err != nil {
		h.abortReviewError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Review deleted", nil)
}

func (h *ReviewHandler) ListByKos(c *gin.Context) {
	kosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid kos ID", nil)
		return
	}

	views, err := h.reviewQueries.ListByKos(c.Request.Context(), kosID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Reviews retrieved", resdto.FromReviewViews(views))
}
