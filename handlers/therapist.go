package handlers

import (
	"net/http"

	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/services/availability"
	"mindhaven/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler exposes therapist availability checks.
type TherapistHandler struct {
	Repo   therapistRepo.TherapistRepository
	Ledger availability.LedgerService
}

func NewTherapistHandler(repo therapistRepo.TherapistRepository, ledger availability.LedgerService) *TherapistHandler {
	return &TherapistHandler{Repo: repo, Ledger: ledger}
}

// GetAvailability reports whether a therapist can take an instant booking
// right now. Routing through the ledger service means a stale entry is
// healed by this very read.
func (h *TherapistHandler) GetAvailability(c *gin.Context) {
	therapist, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	state, err := h.Ledger.ObserveAndReconcile(therapist)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	body := gin.H{"available": !state.Occupied}
	if state.AvailableAt != nil {
		body["availableAt"] = state.AvailableAt
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": body})
}
