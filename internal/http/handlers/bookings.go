package handlers

import (
	"context"
	"fmt"
	"net/http"

	"wanderlust-backend/internal/http/middleware"
	"wanderlust-backend/internal/services"
	"wanderlust-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings services.BookingService
	Docs     services.DocsService
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)

	var req services.CreateBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Bookings.Create(c.Request.Context(), ident.UserID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "create",
		fmt.Sprintf("booking_id=%d hotel_id=%d", booking.ID, req.HotelID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking successful",
		"booking": booking,
	})
}

// GET /api/bookings
func (h BookingHandler) ListForUser(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	views, err := h.Bookings.ListForUser(c.Request.Context(), ident.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/bookings/operator (operator)
func (h BookingHandler) ListForOperator(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	views, err := h.Bookings.ListForOperator(c.Request.Context(), ident.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/bookings/:bookingId
func (h BookingHandler) Get(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	detail, err := h.Bookings.GetForUser(c.Request.Context(), ident.UserID, bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/bookings/:bookingId/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	if err := h.Bookings.Cancel(c.Request.Context(), ident.UserID, bookingID); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "cancel", fmt.Sprintf("booking_id=%d", bookingID))
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// POST /api/bookings/:bookingId/confirm (operator)
func (h BookingHandler) Confirm(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	if err := h.Bookings.Confirm(c.Request.Context(), ident.UserID, bookingID); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "confirm", fmt.Sprintf("booking_id=%d", bookingID))
	c.JSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

// POST /api/bookings/:bookingId/complete (operator)
func (h BookingHandler) Complete(c *gin.Context) {
	ident, _ := middleware.GetIdentity(c)
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	if err := h.Bookings.Complete(c.Request.Context(), ident.UserID, bookingID); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "complete", fmt.Sprintf("booking_id=%d", bookingID))
	c.JSON(http.StatusOK, gin.H{"message": "booking completed"})
}

// GET /api/bookings/:bookingId/voucher
func (h BookingHandler) Voucher(c *gin.Context) {
	h.serveDocument(c, services.DocsService.GenerateVoucher)
}

// GET /api/bookings/:bookingId/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	h.serveDocument(c, services.DocsService.GenerateInvoice)
}

func (h BookingHandler) serveDocument(c *gin.Context, generate func(services.DocsService, context.Context, int64, int64) ([]byte, string, error)) {
	ident, _ := middleware.GetIdentity(c)
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := generate(docs, c.Request.Context(), ident.UserID, bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
