// Package availability owns the per-therapist occupancy ledger. Every caller
// that needs to know whether a therapist is free must go through
// ObserveAndReconcile rather than reading the raw ledger field, because stale
// state can exist between reconciliation sweeps.
package availability

import (
	"time"

	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/models"
	"mindhaven/utils"

	"go.uber.org/zap"
)

// LedgerService manages therapist availability state.
type LedgerService interface {
	// ObserveAndReconcile reads the ledger and, if it is stale or corrupt,
	// clears it (persisting the reset) before reporting the current state.
	ObserveAndReconcile(t *models.Therapist) (models.AvailabilityState, error)
	// Occupy atomically binds an appointment to the therapist's ledger.
	// Fails with therapistRepo.ErrOccupied if the ledger is not idle.
	Occupy(therapistID, appointmentID string, startsAt, endsAt time.Time) error
	// BeginCooldown places a post-session hold on the therapist ending at
	// endedAt plus the cooldown buffer, provided the ledger still references
	// the given appointment. Reports whether the hold was applied.
	BeginCooldown(therapistID, appointmentID string, endedAt time.Time) (bool, error)
	// Clear resets the ledger to idle.
	Clear(therapistID string) error
}

// DefaultLedgerService implements LedgerService.
type DefaultLedgerService struct {
	Repo   therapistRepo.TherapistRepository
	Buffer time.Duration    // cooldown applied after a session ends
	Now    func() time.Time // injectable clock
}

func (s *DefaultLedgerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ObserveAndReconcile is the single source of truth for "is this therapist
// free". A ledger that is active without an expiry, or whose expiry has
// passed, is self-healed to idle on the spot; the caller sees the corrected
// state and the reset is persisted so later readers agree.
func (s *DefaultLedgerService) ObserveAndReconcile(t *models.Therapist) (models.AvailabilityState, error) {
	cs := t.CurrentSession
	if !cs.IsActive {
		return models.AvailabilityState{}, nil
	}

	now := s.now()
	if cs.EndsAt == nil || !cs.EndsAt.After(now) {
		if err := s.Repo.ClearSession(t.ID); err != nil {
			return models.AvailabilityState{}, err
		}
		utils.GetLogger().Info("self-healed stale availability ledger",
			zap.String("therapistId", t.ID))
		t.CurrentSession = models.SessionState{}
		return models.AvailabilityState{}, nil
	}

	return models.AvailabilityState{
		Occupied:      true,
		AvailableAt:   cs.EndsAt,
		AppointmentID: cs.AppointmentID,
	}, nil
}

// Occupy binds the appointment to the ledger for the session window. The
// conditional write in the repository is what makes concurrent bookings of
// the same therapist safe: exactly one wins, the rest see ErrOccupied.
func (s *DefaultLedgerService) Occupy(therapistID, appointmentID string, startsAt, endsAt time.Time) error {
	state := models.SessionState{
		IsActive:      true,
		AppointmentID: &appointmentID,
		StartedAt:     &startsAt,
		EndsAt:        &endsAt,
	}
	return s.Repo.OccupyIfIdle(therapistID, state)
}

// BeginCooldown converts a live occupancy into a cooldown hold so the
// therapist is not instantly re-bookable the moment a session ends. The
// resulting EndsAt is buffer-inclusive: the sweeper clears the hold once it
// passes, with no further buffer stacked on top.
func (s *DefaultLedgerService) BeginCooldown(therapistID, appointmentID string, endedAt time.Time) (bool, error) {
	return s.Repo.BeginCooldown(therapistID, appointmentID, endedAt.Add(s.Buffer))
}

// Clear resets the ledger to idle.
func (s *DefaultLedgerService) Clear(therapistID string) error {
	return s.Repo.ClearSession(therapistID)
}
