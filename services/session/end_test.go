package session

import (
	"testing"
	"time"

	"mindhaven/models"
	"mindhaven/utils"

	"github.com/stretchr/testify/require"
)

func occupiedTherapist(appointmentID string, endsAt time.Time) *models.Therapist {
	return &models.Therapist{
		ID: "th-1",
		CurrentSession: models.SessionState{
			IsActive:      true,
			AppointmentID: &appointmentID,
			EndsAt:        &endsAt,
		},
	}
}

func TestEndSessionCompletesAndStartsCooldown(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)

	// Manual hangup twenty minutes in.
	now := start.Add(20 * time.Minute)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), now)

	ended, err := svc.EndSession("appt-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, ended.Status)

	cs := therapists.therapists["th-1"].CurrentSession
	require.True(t, cs.IsActive)
	require.Nil(t, cs.AppointmentID)
	require.Equal(t, now.Add(10*time.Minute), *cs.EndsAt)
	require.False(t, cs.EndsAt.Before(now))
}

func TestEndSessionRejectsNonParticipant(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), start.Add(20*time.Minute))

	_, err := svc.EndSession("appt-1", "intruder")
	var unauth *utils.UnauthorizedError
	require.ErrorAs(t, err, &unauth)

	// Nothing moved: the appointment stays scheduled, the occupancy stays live.
	require.Equal(t, models.AppointmentScheduled, appointments.appointments["appt-1"].Status)
	cs := therapists.therapists["th-1"].CurrentSession
	require.Equal(t, "appt-1", *cs.AppointmentID)
}

func TestEndSessionAllowsTherapistCaller(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), start.Add(20*time.Minute))

	ended, err := svc.EndSession("appt-1", "th-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, ended.Status)
}

func TestEndSessionIsIdempotent(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)
	now := start.Add(20 * time.Minute)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), now)

	first, err := svc.EndSession("appt-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, first.Status)
	cooldownEnd := *therapists.therapists["th-1"].CurrentSession.EndsAt

	second, err := svc.EndSession("appt-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, second.Status)
	// The cooldown set by the first end is untouched.
	require.Equal(t, cooldownEnd, *therapists.therapists["th-1"].CurrentSession.EndsAt)
}

// A cancel that lands between the read and the status write wins: the
// conditional update misses, the appointment keeps its terminal status and
// the occupancy is left for the winner to handle.
func TestEndSessionLosesRaceToConcurrentCancel(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)
	appointments.beforeStatus = func() {
		appointments.appointments["appt-1"].Status = models.AppointmentCancelled
	}
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), start.Add(20*time.Minute))

	ended, err := svc.EndSession("appt-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCancelled, ended.Status)
	require.Equal(t, models.AppointmentCancelled, appointments.appointments["appt-1"].Status)

	// No cooldown was placed; the occupancy still references the appointment.
	cs := therapists.therapists["th-1"].CurrentSession
	require.Equal(t, "appt-1", *cs.AppointmentID)
}

func TestForceEndSkipsParticipantCheck(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", start.Add(30*time.Minute)))
	appointments := newMemAppointmentRepo(appointment)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), start.Add(40*time.Minute))

	ended, err := svc.ForceEnd("appt-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, ended.Status)
}

func TestEndSessionLateAnchorsCooldownAtScheduledEnd(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	scheduledEnd := start.Add(30 * time.Minute)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-1", scheduledEnd))
	appointments := newMemAppointmentRepo(appointment)

	// Reconciliation arrives five minutes after the session should have
	// ended; the cooldown must not restart from the tick time.
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), scheduledEnd.Add(5*time.Minute))

	_, err := svc.ForceEnd("appt-1")
	require.NoError(t, err)

	cs := therapists.therapists["th-1"].CurrentSession
	require.Equal(t, scheduledEnd.Add(10*time.Minute), *cs.EndsAt)
}

func TestEndSessionLeavesNewerOccupancyAlone(t *testing.T) {
	start := baseTime
	appointment := scheduledAppointment(start, 30)
	// The ledger already belongs to a newer booking.
	newerEnd := start.Add(90 * time.Minute)
	therapists := newMemTherapistRepo(occupiedTherapist("appt-2", newerEnd))
	appointments := newMemAppointmentRepo(appointment)
	svc := newTestSessionService(therapists, appointments, newMemUserRepo(), start.Add(40*time.Minute))

	ended, err := svc.EndSession("appt-1", "u-1")
	require.NoError(t, err)
	require.Equal(t, models.AppointmentCompleted, ended.Status)

	cs := therapists.therapists["th-1"].CurrentSession
	require.Equal(t, "appt-2", *cs.AppointmentID)
	require.Equal(t, newerEnd, *cs.EndsAt)
}

func TestEndSessionUnknownAppointment(t *testing.T) {
	svc := newTestSessionService(newMemTherapistRepo(), newMemAppointmentRepo(), newMemUserRepo(), baseTime)

	_, err := svc.EndSession("ghost", "u-1")
	require.Error(t, err)
}
