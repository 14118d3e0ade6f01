package session

import (
	"time"

	appointmentRepo "mindhaven/database/repository/appointment"
	therapistRepo "mindhaven/database/repository/therapist"
	userRepo "mindhaven/database/repository/user"
	"mindhaven/models"
	"mindhaven/services/availability"
)

// SessionService guards entry into the video room and handles the end of a
// session, whether signalled by a participant or by the reconciliation sweep.
type SessionService interface {
	// Join admits the caller into the appointment's video room if they are a
	// participant and the join window is open.
	Join(appointmentID, callerID string) (*models.JoinResult, error)
	// EndSession completes the appointment and places a cooldown hold on the
	// therapist. The caller must be a participant of the appointment.
	// Idempotent: ending an already-terminal appointment is a no-op.
	EndSession(appointmentID, callerID string) (*models.Appointment, error)
	// ForceEnd completes the appointment without a caller identity, for the
	// reconciliation sweep only.
	ForceEnd(appointmentID string) (*models.Appointment, error)
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Appointments appointmentRepo.AppointmentRepository
	Therapists   therapistRepo.TherapistRepository
	Users        userRepo.UserRepository
	Ledger       availability.LedgerService
	Now          func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
