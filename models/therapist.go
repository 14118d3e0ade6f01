package models

import "time"

// SessionState is the per-therapist availability ledger. A therapist is
// unavailable for new bookings whenever IsActive is true; that covers both a
// live session (AppointmentID set, EndsAt = scheduled session end) and the
// post-session cooldown (AppointmentID nil, EndsAt = cooldown expiry).
//
// Invariant: IsActive without EndsAt is corrupt state; every read path treats
// it as idle and clears it (see services/availability).
type SessionState struct {
	IsActive      bool       `bson:"isActive" json:"isActive"`
	AppointmentID *string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	StartedAt     *time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	EndsAt        *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
}

// InCooldown reports whether the ledger entry is a cooldown hold rather than
// a live session occupancy.
func (s SessionState) InCooldown() bool {
	return s.IsActive && s.AppointmentID == nil
}

type Therapist struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Email       string   `bson:"email" json:"email"`
	AvatarURL   string   `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`

	// SessionFee is the price of a 30-minute session; longer durations are
	// billed pro rata (see services/booking pricing).
	SessionFee float64 `bson:"sessionFee" json:"sessionFee"`
	Currency   string  `bson:"currency" json:"currency"`

	CurrentSession SessionState `bson:"currentSession" json:"currentSession"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AvailabilityState is the reconciled answer to "is this therapist free",
// as returned by the availability ledger service.
type AvailabilityState struct {
	Occupied      bool       `json:"occupied"`
	AvailableAt   *time.Time `json:"availableAt,omitempty"`
	AppointmentID *string    `json:"appointmentId,omitempty"`
}
