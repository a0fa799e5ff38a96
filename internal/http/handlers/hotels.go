package handlers

import (
	"net/http"

	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/http/middleware"
	"wanderlust-backend/internal/services"
	"wanderlust-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	Hotels services.HotelService
}

// GET /api/hotels
func (h HotelHandler) List(c *gin.Context) {
	hotels, err := h.Hotels.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/hotels/:id
func (h HotelHandler) Get(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.Hotels.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// POST /api/hotels (operator)
func (h HotelHandler) Create(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)

	var req services.CreateHotelInput
	if !BindJSONOrError(c, &req) {
		return
	}

	hotel, err := h.Hotels.Create(c.Request.Context(), ident.UserID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "hotel", "create", hotel.Name)
	c.JSON(http.StatusCreated, hotel)
}

// PUT /api/hotels/:id (owning operator)
func (h HotelHandler) Update(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req models.HotelUpdate
	if !BindJSONOrError(c, &req) {
		return
	}

	hotel, err := h.Hotels.Update(c.Request.Context(), ident.UserID, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DELETE /api/hotels/:id (owning operator)
func (h HotelHandler) Delete(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.Hotels.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "hotel", "delete", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "hotel deleted"})
}
