package handlers

import (
	"net/http"

	"wanderlust-backend/internal/http/middleware"
	"wanderlust-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	Favorites services.FavoriteService
}

type addFavoriteRequest struct {
	HotelID int64 `json:"hotelId"`
}

// GET /api/favorites
func (h FavoriteHandler) List(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	hotels, err := h.Favorites.List(c.Request.Context(), ident.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// POST /api/favorites
func (h FavoriteHandler) Add(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)

	var req addFavoriteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := h.Favorites.Add(c.Request.Context(), ident.UserID, req.HotelID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

// DELETE /api/favorites/:hotelId
func (h FavoriteHandler) Remove(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	hotelID, ok := ParamID(c, "hotelId")
	if !ok {
		return
	}

	if err := h.Favorites.Remove(c.Request.Context(), ident.UserID, hotelID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

// GET /api/favorites/:hotelId/check
func (h FavoriteHandler) Check(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	hotelID, ok := ParamID(c, "hotelId")
	if !ok {
		return
	}

	isFavorite, err := h.Favorites.Check(c.Request.Context(), ident.UserID, hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}
