package booking

import (
	"time"

	appointmentRepo "mindhaven/database/repository/appointment"
	therapistRepo "mindhaven/database/repository/therapist"
	userRepo "mindhaven/database/repository/user"
	"mindhaven/models"
	"mindhaven/services/availability"
	"mindhaven/services/notification"
)

// BookingService creates instant bookings.
type BookingService interface {
	// InstantBook validates the request, charges the simulated fee, creates
	// the appointment and occupies the therapist's availability ledger.
	InstantBook(req InstantBookRequest) (*models.BookingResult, error)
}

// InstantBookRequest is the input to InstantBook. UserID comes from the
// authenticated caller, never from the request body.
type InstantBookRequest struct {
	TherapistID string `json:"therapistId"`
	Duration    int    `json:"duration"` // minutes, 30 or 60
	UserID      string `json:"-"`
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Therapists   therapistRepo.TherapistRepository
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
	Ledger       availability.LedgerService
	Notifier     notification.NotificationService
	Now          func() time.Time
}
