package models

import "time"

// AppointmentStatus enumerates the appointment lifecycle. Transitions are
// monotonic: scheduled moves to completed or cancelled and never back.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a confirmed instant booking. User, therapist, timing,
// payment snapshot and meeting link are immutable after creation; only
// Status (and UpdatedAt) change afterwards.
type Appointment struct {
	ID          string `bson:"id" json:"id"`
	UserID      string `bson:"userId" json:"userId"`
	TherapistID string `bson:"therapistId" json:"therapistId"`

	// Date is the scheduled session start instant. For instant bookings this
	// is booking time plus the join-unlock delay, not the booking time itself.
	Date      time.Time `bson:"date" json:"date"`
	StartTime string    `bson:"startTime" json:"startTime"` // HH:MM display of Date
	EndTime   string    `bson:"endTime" json:"endTime"`     // HH:MM display of Date+Duration
	Duration  int       `bson:"duration" json:"duration"`   // minutes, 30 or 60

	Status      AppointmentStatus `bson:"status" json:"status"`
	Payment     PaymentSnapshot   `bson:"payment" json:"payment"`
	MeetingLink string            `bson:"meetingLink" json:"meetingLink"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndsAt returns the scheduled session end instant.
func (a *Appointment) EndsAt() time.Time {
	return a.Date.Add(time.Duration(a.Duration) * time.Minute)
}

// Terminal reports whether the appointment has reached a final status.
func (a *Appointment) Terminal() bool {
	return a.Status == AppointmentCompleted || a.Status == AppointmentCancelled
}
