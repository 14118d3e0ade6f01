package therapistRepo

import (
	"errors"
	"time"

	"mindhaven/models"
)

// ErrOccupied is returned by OccupyIfIdle when the conditional update finds
// the therapist's ledger already active. It is the serialization point that
// prevents two concurrent instant bookings from both taking the therapist.
var ErrOccupied = errors.New("therapist ledger is already occupied")

// TherapistRepository defines methods for therapist data access, including
// the atomic availability-ledger operations.
type TherapistRepository interface {
	// GetByID retrieves a therapist by their unique ID.
	GetByID(id string) (*models.Therapist, error)
	// Create inserts a new therapist record with an idle ledger.
	Create(t *models.Therapist) error
	// FindWithActiveSession returns all therapists whose ledger is active;
	// used by the reconciliation sweep.
	FindWithActiveSession() ([]models.Therapist, error)

	// OccupyIfIdle atomically writes the occupancy state, but only if the
	// ledger is currently idle. Returns ErrOccupied when it is not.
	OccupyIfIdle(id string, state models.SessionState) error
	// BeginCooldown replaces the ledger with a cooldown hold ending at endsAt,
	// but only while the ledger still references appointmentID. Returns
	// whether the update was applied.
	BeginCooldown(id, appointmentID string, endsAt time.Time) (bool, error)
	// ClearSession resets the ledger to fully idle.
	ClearSession(id string) error
}
