package handlers

import (
	"net/http"

	appointmentRepo "mindhaven/database/repository/appointment"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes read access to appointments.
type AppointmentHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

// GetAppointment returns one appointment, visible only to its participants.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	callerID := c.GetString("userID")
	if callerID != appointment.UserID && callerID != appointment.TherapistID {
		utils.RespondError(c, &utils.UnauthorizedError{Message: "You are not a participant of this session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"appointment": appointment}})
}

// ListAppointments returns the caller's appointments. Therapists pass
// ?as=therapist to list their assigned sessions instead of their bookings.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	callerID := c.GetString("userID")

	var err error
	var appointments interface{}
	if c.Query("as") == "therapist" {
		appointments, err = h.Repo.FindByTherapist(callerID)
	} else {
		appointments, err = h.Repo.FindByUser(callerID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"appointments": appointments}})
}
