package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func newAppointmentID() string {
	return uuid.New().String()
}

// newTransactionID composes a time plus random identifier for the simulated
// charge; both components keep concurrent bookings from colliding.
func newTransactionID(now time.Time) string {
	return fmt.Sprintf("txn_%d_%s", now.UnixMilli(), uuid.New().String()[:8])
}

// newMeetingRoomID generates the opaque room identifier the external video
// service resolves. The platform only stores it, never manages the room.
func newMeetingRoomID(now time.Time) string {
	return fmt.Sprintf("mindhaven-%d-%s", now.UnixNano(), uuid.New().String()[:12])
}
