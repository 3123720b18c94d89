package api

import (
	"errors"
	"net/http"

	resdto "koskita/internal/handler/dto/response"
	"koskita/internal/handler/httperr"
	"koskita/internal/handler/middleware"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteCommands commands.FavoriteCommands
	kosQueries       queries.KosQueries
}

func NewFavoriteHandler(favoriteCommands commands.FavoriteCommands, kosQueries queries.KosQueries) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteCommands: favoriteCommands,
		kosQueries:       kosQueries,
	}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	kosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid kos ID", nil)
		return
	}

	if err := h.favoriteCommands.AddFavorite(c.Request.Context(), userID, kosID); err != nil {
		if errors.Is(err, commands.ErrKosNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Kos not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos added to favorites", nil)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	kosID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeValidation, "Invalid kos ID", nil)
		return
	}

	if err := h.favoriteCommands.RemoveFavorite(c.Request.Context(), userID, kosID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Kos removed from favorites", nil)
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	items, err := h.kosQueries.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error", nil)
		return
	}

	resdto.OK(c, http.StatusOK, "Favorites retrieved", resdto.FromKosListItems(items))
}
