// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/models"
	"mindhaven/utils"

	"go.uber.org/zap"
)

// sessionStartDelay is the fixed gap between booking and session start. The
// join window later unlocks five minutes before that start, so a teen can
// enter the room essentially as soon as the booking confirms.
const sessionStartDelay = 5 * time.Minute

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InstantBook books a therapist for an immediate session.
//
// Effect order matters: the ledger occupancy is the conditional write that
// serializes concurrent bookings, so it is taken first; if the appointment
// insert then fails, the occupancy is released again. The confirmation email
// is best-effort and never fails the booking.
func (s *DefaultBookingService) InstantBook(req InstantBookRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if req.Duration != 30 && req.Duration != 60 {
		return nil, &utils.ValidationError{Message: "duration must be 30 or 60 minutes"}
	}

	therapist, err := s.Therapists.GetByID(req.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist.SessionFee <= 0 {
		return nil, &utils.ValidationError{Message: "therapist has no session pricing configured"}
	}

	state, err := s.Ledger.ObserveAndReconcile(therapist)
	if err != nil {
		return nil, fmt.Errorf("failed to check therapist availability: %w", err)
	}
	if state.Occupied {
		return nil, &utils.ConflictError{
			Message:     "Therapist is currently in a session",
			AvailableAt: state.AvailableAt,
		}
	}

	user, err := s.Users.GetByID(req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sessionStart := now.Add(sessionStartDelay)
	sessionEnd := sessionStart.Add(time.Duration(req.Duration) * time.Minute)

	appointment := &models.Appointment{
		ID:          newAppointmentID(),
		UserID:      user.ID,
		TherapistID: therapist.ID,
		Date:        sessionStart,
		StartTime:   sessionStart.Format("15:04"),
		EndTime:     sessionEnd.Format("15:04"),
		Duration:    req.Duration,
		Status:      models.AppointmentScheduled,
		Payment: models.PaymentSnapshot{
			Amount:        SessionAmount(therapist.SessionFee, req.Duration),
			Currency:      therapist.Currency,
			Status:        models.PaymentStatusPaid,
			TransactionID: newTransactionID(now),
			PaidAt:        now,
			Method:        models.PaymentMethodCard,
		},
		MeetingLink: newMeetingRoomID(now),
	}

	// Serialization point: exactly one concurrent booking can take the
	// therapist; the others land here with ErrOccupied.
	if err := s.Ledger.Occupy(therapist.ID, appointment.ID, sessionStart, sessionEnd); err != nil {
		if errors.Is(err, therapistRepo.ErrOccupied) {
			return nil, s.busyConflict(therapist.ID)
		}
		return nil, fmt.Errorf("failed to occupy therapist: %w", err)
	}

	if err := s.Appointments.Create(appointment); err != nil {
		// Release the occupancy so a failed insert cannot leave the
		// therapist blocked with no appointment behind it.
		if clearErr := s.Ledger.Clear(therapist.ID); clearErr != nil {
			logger.Error("failed to release occupancy after create failure",
				zap.String("therapistId", therapist.ID), zap.Error(clearErr))
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.notifyBookingConfirmed(user, therapist, appointment)

	logger.Info("instant booking created",
		zap.String("appointmentId", appointment.ID),
		zap.String("therapistId", therapist.ID),
		zap.Time("sessionStart", sessionStart),
		zap.Float64("amount", appointment.Payment.Amount))

	return &models.BookingResult{
		Appointment: appointment,
		CanJoinAt:   sessionStart,
	}, nil
}

// busyConflict re-reads the ledger after a lost occupancy race so the
// rejection still carries a useful availableAt.
func (s *DefaultBookingService) busyConflict(therapistID string) error {
	conflict := &utils.ConflictError{Message: "Therapist is currently in a session"}
	if t, err := s.Therapists.GetByID(therapistID); err == nil && t.CurrentSession.EndsAt != nil {
		conflict.AvailableAt = t.CurrentSession.EndsAt
	}
	return conflict
}

// notifyBookingConfirmed sends the confirmation email. Failures are logged
// and swallowed; a booking must never roll back because mail is down.
func (s *DefaultBookingService) notifyBookingConfirmed(user *models.User, therapist *models.Therapist, a *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.SendBookingConfirmation(ctx, user, therapist, a); err != nil {
			utils.GetLogger().Warn("booking confirmation email failed",
				zap.String("appointmentId", a.ID), zap.Error(err))
		}
	}()
}
