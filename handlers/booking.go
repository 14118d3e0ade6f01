package handlers

import (
	"net/http"

	"mindhaven/services/booking"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the instant-booking endpoint.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InstantBook creates an instant booking for the authenticated teen.
func (h *BookingHandler) InstantBook(c *gin.Context) {
	var req booking.InstantBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}
	req.UserID = c.GetString("userID")

	result, err := h.Service.InstantBook(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"appointment": result.Appointment,
			"canJoinAt":   result.CanJoinAt,
		},
	})
}
