// File: services/session/join.go
package session

import (
	"fmt"

	"mindhaven/models"
	"mindhaven/utils"
)

// Join validates the caller and the timing window, then returns the opaque
// meeting room identifier together with display metadata for the other
// participant. Authorization is checked before timing so an outsider never
// learns when a session runs.
func (s *DefaultSessionService) Join(appointmentID, callerID string) (*models.JoinResult, error) {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	if callerID != appointment.UserID && callerID != appointment.TherapistID {
		return nil, &utils.UnauthorizedError{Message: "You are not a participant of this session"}
	}

	if appointment.Status == models.AppointmentCancelled {
		return nil, &utils.ConflictError{Message: "This session was cancelled"}
	}

	window := WindowFor(appointment)
	now := s.now()

	if appointment.Status == models.AppointmentCompleted || window.Ended(now) {
		return nil, &utils.ConflictError{Message: "This session has ended"}
	}

	if !window.OpenAt(now) {
		minutes := window.MinutesUntilOpen(now)
		opensAt := window.OpensAt
		return nil, &utils.ConflictError{
			Message:   fmt.Sprintf("You can join in %d minute(s)", minutes),
			CanJoinAt: &opensAt,
		}
	}

	participant, err := s.counterpartFor(appointment, callerID)
	if err != nil {
		return nil, err
	}

	return &models.JoinResult{
		MeetingLink: appointment.MeetingLink,
		Appointment: appointment,
		Participant: participant,
	}, nil
}

// counterpartFor builds the display metadata for the other side of the call.
// The therapist only ever sees the teen's anonymized alias; the teen sees the
// therapist's real name and avatar.
func (s *DefaultSessionService) counterpartFor(a *models.Appointment, callerID string) (models.Participant, error) {
	if callerID == a.TherapistID {
		user, err := s.Users.GetByID(a.UserID)
		if err != nil {
			return models.Participant{}, err
		}
		alias := user.Alias
		if alias == "" {
			alias = "Anonymous teen"
		}
		return models.Participant{DisplayName: alias, Anonymous: true}, nil
	}

	therapist, err := s.Therapists.GetByID(a.TherapistID)
	if err != nil {
		return models.Participant{}, err
	}
	return models.Participant{
		DisplayName: therapist.Name,
		AvatarURL:   therapist.AvatarURL,
	}, nil
}
