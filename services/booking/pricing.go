package booking

import "math"

// baselineMinutes is the session length the stored fee is quoted against.
const baselineMinutes = 30

// SessionAmount scales the therapist's 30-minute fee linearly to the booked
// duration, rounding up so non-multiple durations never undercharge.
// Multiplying before dividing keeps the arithmetic exact for integral fees.
func SessionAmount(perSession float64, durationMinutes int) float64 {
	return math.Ceil(perSession * float64(durationMinutes) / baselineMinutes)
}
