// File: services/session/end.go
package session

import (
	"mindhaven/models"
	"mindhaven/utils"

	"go.uber.org/zap"
)

// EndSession completes the appointment on behalf of a participant hanging up
// or their client countdown reaching zero. Only the booking user or the
// assigned therapist may end a session; anyone else is rejected before any
// state changes. Safe to repeat.
func (s *DefaultSessionService) EndSession(appointmentID, callerID string) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	if callerID != appointment.UserID && callerID != appointment.TherapistID {
		return nil, &utils.UnauthorizedError{Message: "You are not a participant of this session"}
	}

	return s.complete(appointment)
}

// ForceEnd completes the appointment without a caller identity. Reserved for
// the reconciliation sweep, which acts on the system's behalf; it is never
// reachable from a request handler.
func (s *DefaultSessionService) ForceEnd(appointmentID string) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	return s.complete(appointment)
}

// complete transitions the appointment to completed and converts the
// therapist's occupancy into a cooldown hold.
//
// The cooldown anchors at the moment the session actually stopped being
// live: the call instant for a manual hangup, the scheduled end for a late
// sweep. A sweep that runs long after the session ended therefore never
// extends the therapist's block.
func (s *DefaultSessionService) complete(appointment *models.Appointment) (*models.Appointment, error) {
	// Terminal statuses are final; a double end must not error.
	if appointment.Terminal() {
		return appointment, nil
	}

	applied, err := s.Appointments.UpdateStatus(appointment.ID, models.AppointmentCompleted)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost a race with a concurrent cancel or end; whoever won owns the
		// ledger transition, so report the final state and touch nothing.
		return s.Appointments.GetByID(appointment.ID)
	}
	appointment.Status = models.AppointmentCompleted

	now := s.now()
	endedAt := now
	if scheduledEnd := appointment.EndsAt(); scheduledEnd.Before(endedAt) {
		endedAt = scheduledEnd
	}

	// Only applies while the ledger still references this appointment; an
	// out-of-order end call cannot clobber a newer booking's occupancy.
	cooldownApplied, err := s.Ledger.BeginCooldown(appointment.TherapistID, appointment.ID, endedAt)
	if err != nil {
		return nil, err
	}
	if !cooldownApplied {
		utils.GetLogger().Debug("ledger no longer references ended appointment, cooldown skipped",
			zap.String("appointmentId", appointment.ID),
			zap.String("therapistId", appointment.TherapistID))
	}

	return appointment, nil
}
