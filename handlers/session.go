package handlers

import (
	"net/http"

	"mindhaven/services/session"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the join and end-session endpoints.
type SessionHandler struct {
	Service session.SessionService
	Logger  *zap.Logger
}

func NewSessionHandler(svc session.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Service: svc, Logger: logger}
}

// Join admits the caller into the appointment's video room.
func (h *SessionHandler) Join(c *gin.Context) {
	appointmentID := c.Param("id")
	callerID := c.GetString("userID")

	result, err := h.Service.Join(appointmentID, callerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// End completes the session. Invoked on manual hangup or when the client
// countdown reaches zero; repeating it is harmless. Only a participant of
// the appointment may end it.
func (h *SessionHandler) End(c *gin.Context) {
	appointmentID := c.Param("id")
	callerID := c.GetString("userID")

	appointment, err := h.Service.EndSession(appointmentID, callerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("session ended", zap.String("appointmentId", appointmentID))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"appointment": appointment}})
}
