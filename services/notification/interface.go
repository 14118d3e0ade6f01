package notification

import (
	"context"

	"mindhaven/models"
)

// NotificationService sends transactional email. Delivery is best-effort:
// callers log failures and carry on, they never fail the parent operation.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, user *models.User, therapist *models.Therapist, appointment *models.Appointment) error
}
