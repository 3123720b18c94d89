package api

import (
	"errors"
	"net/http"

	"koskita/internal/domain/kos"
	reqdto "koskita/internal/handler/dto/request"
	resdto "koskita/internal/handler/dto/response"
	"koskita/internal/handler/httperr"
	"koskita/internal/handler/middleware"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KosHandler struct {
	kosCommands commands.KosCommands
	kosQueries  queries.KosQueries
}

func NewKosHandler(kosCommands commands.KosCommands, kosQueries queries.KosQueries) *KosHandler {
	return &KosHandler{
		kosCommands: kosCommands,
		kosQueries:  kosQueries,
	}
}

func kosDomainValidation(err error) bool {
	return errors.Is(err, kos.ErrEmptyName) ||
		errors.Is(err, kos.ErrNameTooLong) ||
		errors.Is(err, kos.ErrEmptyAddress) ||
		errors.Is(err, kos.ErrInvalidMonthlyPrice) ||
		errors.Is(err, kos.ErrInvalidRoomTotal) ||
		errors.Is(err, kos.ErrInvalidGenderPolicy) ||
		errors.Is(err, kos.ErrInvalidPhotoURL) ||
		errors.Is(err, kos.ErrPhotoCaptionTooLong)
}

func (h *KosHandler) abortKosError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrKosNotFound), errors.Is(err, queries.ErrKosNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeNotFound, "Kos not found", nil)
	case errors.Is(err, commands.ErrKosNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			httperr.CodeForbidden, "Not the owner of this kos", nil)
	case errors.Is(err, commands.ErrPhotoNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			httperr.CodeNotFound, "Photo not found", nil)
	case kosDomainValidation(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
	}
}

func (h *KosHandler) Search(c *gin.Context) {
	var req reqdto.SearchKosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid query parameters", err.Error())
		return
	}

	items, err := h.kosQueries.Search(c.Request.Context(), req.ToFilter())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos retrieved", resdto.FromKosListItems(items))
}

func (h *KosHandler) GetKos(c *gin.Context) {
	kosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid kos ID", nil)
		return
	}

	// Optional auth: owners see their own unpublished listings.
	var actorID *uuid.UUID
	actorRole := ""
	if id, ok := middleware.GetUserID(c); ok {
		actorID = &id
	}
	if role, ok := middleware.GetUserRole(c); ok {
		actorRole = role.String()
	}

	view, err := h.kosQueries.GetByID(c.Request.Context(), kosID, actorID, actorRole)
	if err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos retrieved", resdto.FromKosView(view))
}

func (h *KosHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	items, err := h.kosQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos retrieved", resdto.FromKosListItems(items))
}

func (h *KosHandler) CreateKos(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	var req reqdto.CreateKosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	view, err := h.kosCommands.CreateKos(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusCreated, "Kos created", resdto.FromKosView(view))
}

func (h *KosHandler) UpdateKos(c *gin.Context) {
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

	var req reqdto.UpdateKosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	view, err := h.kosCommands.UpdateKos(c.Request.Context(), kosID, req.ToCommand(), actor.ID, actor.Role.String())
	if err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos updated", resdto.FromKosView(view))
}

func (h *KosHandler) DeleteKos(c *gin.Context) {
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

	if err := h.kosCommands.UnpublishKos(c.Request.Context(), kosID, actor.ID, actor.Role.String()); err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos removed", nil)
}

func (h *KosHandler) AddPhoto(c *gin.Context) {
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

	var req reqdto.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid request format", err.Error())
		return
	}

	photoID, err := h.kosCommands.AddPhoto(c.Request.Context(), kosID, req.ToCommand(), actor.ID, actor.Role.String())
	if err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusCreated, "Photo added", gin.H{"photoId": photoID})
}

func (h *KosHandler) RemovePhoto(c *gin.Context) {
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
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid photo ID", nil)
		return
	}

	if err := h.kosCommands.RemovePhoto(c.Request.Context(), kosID, photoID, actor.ID, actor.Role.String()); err != nil {
		h.abortKosError(c, err)
		return
	}

	resdto.OK(c, http.StatusOK, "Photo removed", nil)
}
