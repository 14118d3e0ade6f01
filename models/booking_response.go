package models

import "time"

// BookingResult is what the booking engine hands back on success.
type BookingResult struct {
	Appointment *Appointment `json:"appointment"`
	CanJoinAt   time.Time    `json:"canJoinAt"`
}

// Participant is the display metadata for the other side of a session:
// the teen sees the therapist's real profile, the therapist sees an
// anonymized alias.
type Participant struct {
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Anonymous   bool   `json:"anonymous"`
}

// JoinResult is returned when a participant is admitted to the video room.
type JoinResult struct {
	MeetingLink string       `json:"meetingLink"`
	Appointment *Appointment `json:"appointment"`
	Participant Participant  `json:"participant"`
}
