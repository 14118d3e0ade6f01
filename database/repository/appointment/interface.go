package appointmentRepo

import (
	"time"

	"mindhaven/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// Create inserts a new appointment record.
	Create(a *models.Appointment) error
	// UpdateStatus moves a scheduled appointment to the given status. Terminal
	// statuses are final: reports false without writing when the appointment
	// has already left the scheduled state.
	UpdateStatus(id string, status models.AppointmentStatus) (bool, error)
	// FindByUser returns all appointments booked by the given user.
	FindByUser(userID string) ([]models.Appointment, error)
	// FindByTherapist returns all appointments assigned to the given therapist.
	FindByTherapist(therapistID string) ([]models.Appointment, error)
	// FindOverdueScheduled returns appointments still marked scheduled whose
	// start instant is at or before now; used by the reconciliation sweep.
	FindOverdueScheduled(now time.Time) ([]models.Appointment, error)
}
