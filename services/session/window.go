// File: services/session/window.go
package session

import (
	"math"
	"time"

	"mindhaven/models"
)

// JoinLeadTime is how long before the scheduled start the join window opens.
const JoinLeadTime = 5 * time.Minute

// Window is the time range during which a participant may enter the video
// room for an appointment. It is a pure derivation of the appointment; the
// server-side checks here are authoritative and any client countdown is a
// display-only mirror.
//
// The window anchors to the scheduled start (appointment.Date), not to the
// booking creation instant.
type Window struct {
	OpensAt time.Time // Start minus JoinLeadTime
	Start   time.Time
	End     time.Time
}

// WindowFor derives the join window from an appointment.
func WindowFor(a *models.Appointment) Window {
	start := a.Date
	return Window{
		OpensAt: start.Add(-JoinLeadTime),
		Start:   start,
		End:     a.EndsAt(),
	}
}

// OpenAt reports whether joining is permitted at the given instant. The
// boundary instants are inclusive on both sides: joining exactly at OpensAt
// and exactly at End is allowed.
func (w Window) OpenAt(now time.Time) bool {
	return !now.Before(w.OpensAt) && !now.After(w.End)
}

// Ended reports whether the instant is past the session end.
func (w Window) Ended(now time.Time) bool {
	return now.After(w.End)
}

// MinutesUntilOpen returns how many minutes remain until the window opens,
// rounded up so "can join in 1 minute" never reads as zero early.
func (w Window) MinutesUntilOpen(now time.Time) int {
	if !now.Before(w.OpensAt) {
		return 0
	}
	return int(math.Ceil(w.OpensAt.Sub(now).Minutes()))
}
